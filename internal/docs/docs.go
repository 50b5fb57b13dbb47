// Package docs renders a finalized model as a small browsable HTML page
// and serves it locally. It is a read-only decorator over the model; the
// core knows nothing about it.
package docs

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chomey/apyxl/pkg/model"
	"github.com/chomey/apyxl/pkg/view"
)

// Server serves rendered model documentation.
type Server struct {
	api    *model.Api
	logger *slog.Logger
}

// NewServer creates a docs server over api.
func NewServer(api *model.Api, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{api: api, logger: logger}
}

// Serve renders the docs and listens on addr until the server fails.
func (s *Server) Serve(addr string) error {
	page, err := Render(s.api)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	})

	s.logger.Info("serving docs", "addr", addr)
	return http.ListenAndServe(addr, r)
}

type nsData struct {
	Name       string
	Path       string
	Dtos       []dtoData
	Rpcs       []rpcData
	Enums      []enumData
	Namespaces []nsData
}

type dtoData struct {
	Name   string
	Fields []string
}

type rpcData struct {
	Name      string
	Signature string
}

type enumData struct {
	Name     string
	Variants []string
}

var pageTemplate = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>API documentation</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
.ns { margin-left: 1.5rem; border-left: 2px solid #ddd; padding-left: 1rem; }
h2, h3 { margin-bottom: 0.2rem; }
code { background: #f4f4f4; padding: 0 0.25rem; }
ul { margin-top: 0.2rem; }
</style>
</head>
<body>
<h1>API documentation</h1>
{{template "ns" .}}
{{define "ns"}}
<div class="ns">
{{if .Name}}<h2>namespace <code>{{.Path}}</code></h2>{{end}}
{{range .Dtos}}<h3>dto <code>{{.Name}}</code></h3><ul>{{range .Fields}}<li><code>{{.}}</code></li>{{end}}</ul>{{end}}
{{range .Rpcs}}<h3>rpc <code>{{.Signature}}</code></h3>{{end}}
{{range .Enums}}<h3>enum <code>{{.Name}}</code></h3><ul>{{range .Variants}}<li><code>{{.}}</code></li>{{end}}</ul>{{end}}
{{range .Namespaces}}{{template "ns" .}}{{end}}
</div>
{{end}}
</body>
</html>
`))

// Render builds the full documentation page for api.
func Render(api *model.Api) (string, error) {
	root := collect(view.New(api).Root(), nil)
	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, root); err != nil {
		return "", fmt.Errorf("failed to render docs: %w", err)
	}
	return sb.String(), nil
}

func collect(ns view.Namespace, path []string) nsData {
	data := nsData{Path: strings.Join(path, ".")}
	if len(path) > 0 {
		data.Name = path[len(path)-1]
	}
	for _, d := range ns.Dtos() {
		dd := dtoData{Name: d.Name()}
		for _, f := range d.Fields() {
			dd.Fields = append(dd.Fields, fmt.Sprintf("%s: %s", f.Name(), f.Type()))
		}
		data.Dtos = append(data.Dtos, dd)
	}
	for _, r := range ns.Rpcs() {
		var params []string
		for _, p := range r.Params() {
			params = append(params, fmt.Sprintf("%s: %s", p.Name(), p.Type()))
		}
		sig := fmt.Sprintf("%s(%s)", r.Name(), strings.Join(params, ", "))
		if ret := r.ReturnType(); ret != nil {
			sig += " -> " + ret.String()
		}
		data.Rpcs = append(data.Rpcs, rpcData{Name: r.Name(), Signature: sig})
	}
	for _, e := range ns.Enums() {
		ed := enumData{Name: e.Name()}
		for _, v := range e.Variants() {
			if v.HasValue {
				ed.Variants = append(ed.Variants, fmt.Sprintf("%s = %d", v.Name, v.Value))
			} else {
				ed.Variants = append(ed.Variants, v.Name)
			}
		}
		data.Enums = append(data.Enums, ed)
	}
	for _, child := range ns.Namespaces() {
		data.Namespaces = append(data.Namespaces, collect(child, append(path, child.Name())))
	}
	return data
}
