package main

import (
	"os"

	"github.com/passbook-dev/passbook/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
