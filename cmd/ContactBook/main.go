package main

import (
	"os"

	"ContactBook/cmd/ContactBook/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
