package main

import (
	"os"

	"ftracker/cmd/ftracker/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
