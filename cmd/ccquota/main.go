package main

import (
	"os"

	"github.com/bnema/cc-quota/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
