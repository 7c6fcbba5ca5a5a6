package main

import (
	"os"

	"github.com/helalifaker/Project-2052-sub001/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
