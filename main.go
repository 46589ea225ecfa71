// Package main is the entry point for winprefs.
package main

import (
	"fmt"
	"os"

	"github.com/billie-coop/winprefs/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "winprefs:", err)
		os.Exit(1)
	}
}
