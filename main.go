package main

import (
	"os"

	"github.com/conneroisu/aoc2022/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
