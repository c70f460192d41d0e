package main

import (
	"os"

	"github.com/bnema/guard-limiter-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
