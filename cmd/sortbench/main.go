// Command sortbench compares sorting algorithms across synthetic datasets.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/sortbench/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
