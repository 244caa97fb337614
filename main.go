package main

import (
	"os"

	"github.com/alplock/alplock/cmd"
)

func main() {
	// Commands print their own failure messages before returning an error,
	// so the exit code is all that is left to do here.
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
