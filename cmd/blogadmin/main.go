package main

import (
	"os"

	"github.com/daniilsolovey/blogicum/cmd/blogadmin/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
