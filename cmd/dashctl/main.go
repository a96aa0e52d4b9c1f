package main

import (
	"os"

	"github.com/chris/dashboard-wallpaper/pkg/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
