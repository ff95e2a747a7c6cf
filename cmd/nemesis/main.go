package main

import (
	"os"

	"github.com/nemesix/nemesis-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
