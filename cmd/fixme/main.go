package main

import (
	"os"

	"fixme/cmd/fixme/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
