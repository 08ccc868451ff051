package main

import (
	"fmt"
	"os"

	"gift-recommender-be/cmd/giftctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
