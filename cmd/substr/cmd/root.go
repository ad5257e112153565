package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "substr",
	Short: "substr — literal substring search, splitting, and edit distance",
	Long:  "Precompiled literal search over files or stdin, with splitting and Levenshtein distance.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// readInput returns the contents of the named file, or stdin when name
// is empty or "-".
func readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(distCmd)
}
