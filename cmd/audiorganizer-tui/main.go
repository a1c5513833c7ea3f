package main

import (
	"fmt"
	"os"

	"github.com/handiism/audiorganizer/internal/tui"
)

func main() {
	var sourceDir string
	if len(os.Args) > 1 {
		sourceDir = os.Args[1]
	}

	if err := tui.Run(sourceDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
