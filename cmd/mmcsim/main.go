package main

import (
	"fmt"
	"os"

	"mmcsim/cmd/mmcsim/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
