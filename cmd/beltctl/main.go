package main

import (
	"fmt"
	"os"

	"github.com/danmuck/beltctl/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "beltctl: %v\n", err)
		os.Exit(1)
	}
}
