package main

import (
	"os"

	"github.com/barescript-org/barescript/cmd/bare/cmd"
	"github.com/barescript-org/barescript/pkg/runtime"
)

func main() {
	// Register the builtin library before any script executes
	runtime.RegisterBuiltins()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
