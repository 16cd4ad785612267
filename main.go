package main

import (
	"os"

	"github.com/kowalski-site/kowalski/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
