package main

import (
	"os"

	"github.com/primekit/primer/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
