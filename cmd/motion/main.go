package main

import (
	"os"

	"github.com/go-drift/motion/cmd/motion/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
