package main

import (
	"os"

	"github.com/katalvlaran/mlr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
