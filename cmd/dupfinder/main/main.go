package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dupfinder/cmd/dupfinder"
	"github.com/arthur-debert/dupfinder/pkg/output/styles"
)

func main() {
	rootCmd := dupfinder.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
