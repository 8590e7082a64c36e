package main

import (
	"os"

	"github.com/psantana5/wmsreport/cmd/wmsreport/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
