package generator

import (
	"fmt"
	"strings"

	"github.com/chomey/apyxl/pkg/model"
	"github.com/chomey/apyxl/pkg/output"
	"github.com/chomey/apyxl/pkg/view"
)

// Dbg writes the model out in a readable indented format. Useful for
// inspecting what the parser actually captured.
type Dbg struct{}

// Generate writes the whole tree rooted at the view's root namespace.
func (Dbg) Generate(m *view.Model, out output.Output) error {
	return dbgNamespace(m.Root(), 0, out)
}

func dbgNamespace(ns view.Namespace, depth int, out output.Output) error {
	if err := writeLine(out, depth, "namespace %s {", ns.Name()); err != nil {
		return err
	}
	for _, d := range ns.Dtos() {
		if err := dbgDto(d, depth+1, out); err != nil {
			return err
		}
	}
	for _, r := range ns.Rpcs() {
		if err := dbgRpc(r, depth+1, out); err != nil {
			return err
		}
	}
	for _, e := range ns.Enums() {
		if err := dbgEnum(e, depth+1, out); err != nil {
			return err
		}
	}
	for _, child := range ns.Namespaces() {
		if err := dbgNamespace(child, depth+1, out); err != nil {
			return err
		}
	}
	return writeLine(out, depth, "}")
}

func dbgDto(d view.Dto, depth int, out output.Output) error {
	if err := writeLine(out, depth, "dto %s {", d.Name()); err != nil {
		return err
	}
	for _, f := range d.Fields() {
		if err := writeLine(out, depth+1, "%s: %s", f.Name(), f.Type()); err != nil {
			return err
		}
	}
	return writeLine(out, depth, "}")
}

func dbgRpc(r view.Rpc, depth int, out output.Output) error {
	params := make([]string, 0, len(r.Params()))
	for _, p := range r.Params() {
		params = append(params, fmt.Sprintf("%s: %s", p.Name(), p.Type()))
	}
	sig := fmt.Sprintf("rpc %s(%s)", r.Name(), strings.Join(params, ", "))
	if ret := r.ReturnType(); ret != nil {
		sig += " -> " + ret.String()
	}
	return writeLine(out, depth, "%s", sig)
}

func dbgEnum(e view.Enum, depth int, out output.Output) error {
	if err := writeLine(out, depth, "enum %s {", e.Name()); err != nil {
		return err
	}
	for _, v := range e.Variants() {
		if err := dbgVariant(v, depth+1, out); err != nil {
			return err
		}
	}
	return writeLine(out, depth, "}")
}

func dbgVariant(v model.EnumVariant, depth int, out output.Output) error {
	if v.HasValue {
		return writeLine(out, depth, "%s = %d", v.Name, v.Value)
	}
	return writeLine(out, depth, "%s", v.Name)
}

func writeLine(out output.Output, depth int, format string, args ...any) error {
	if err := out.Write(strings.Repeat("  ", depth) + fmt.Sprintf(format, args...)); err != nil {
		return err
	}
	return out.Newline()
}
