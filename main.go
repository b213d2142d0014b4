package main

import (
	"os"

	"github.com/rybkr/knightstour/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
