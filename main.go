package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/melih-ucgun/logprinter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err.Error())
		os.Exit(1)
	}
}
