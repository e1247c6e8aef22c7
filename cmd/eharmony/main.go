package main

import (
	"os"

	"github.com/Conceptual-Machines/eharmony-api/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
