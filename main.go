package main

import (
	"context"
	"fmt"
	"os"

	"github.com/andersonbraz/linkbio/cmd"
)

func main() {
	if err := cmd.Execute(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
