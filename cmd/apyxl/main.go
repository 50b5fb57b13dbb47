// Command apyxl is the CLI for the apyxl API definition toolchain.
package main

import (
	"os"

	"github.com/chomey/apyxl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
