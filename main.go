package main

import (
	"os"

	"github.com/rafaelqm/dsdetective/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
