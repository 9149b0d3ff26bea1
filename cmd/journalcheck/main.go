package main

import (
	"os"

	"github.com/ecomhub/finance_backoffice/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
