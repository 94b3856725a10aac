package main

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/cmd/adventure/command"
)

func main() {
	if err := command.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
