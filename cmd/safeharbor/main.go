package main

import (
	"fmt"
	"os"

	"github.com/rpgo/safeharbor/internal/cli"
)

func main() {
	c := cli.NewCLI(cli.Options{Output: os.Stdout})

	if err := c.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
