// substr is a command-line front end for the substring engine:
// literal search, splitting, and edit distance over files or stdin.
package main

import (
	"os"

	"github.com/coregx/substr/cmd/substr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
