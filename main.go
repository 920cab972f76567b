package main

import (
	"fmt"
	"os"

	"github.com/matt-g-everett/ledanim/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ledanim:", err)
		os.Exit(1)
	}
}
