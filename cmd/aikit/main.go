package main

import (
	"os"

	"aikit/cmd/aikit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
