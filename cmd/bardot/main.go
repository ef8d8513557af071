package main

import (
	"os"

	"github.com/pablasso/bardot/internal/cli"
)

func main() {
	// Without arguments the root command opens the preview
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
