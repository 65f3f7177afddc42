package main

import (
	"os"

	"github.com/abhisek/l2quiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
