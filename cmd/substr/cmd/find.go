package cmd

import (
	"fmt"
	"os"

	"github.com/coregx/substr"
	"github.com/spf13/cobra"
)

var (
	findAll     bool
	findReverse bool
	findCount   bool
)

var findCmd = &cobra.Command{
	Use:           "find [flags] <pattern> [file]",
	Short:         "Find occurrences of a literal pattern",
	Long:          "Prints the byte offset of each occurrence of the pattern in the input, one per line. Reads stdin when no file is given.",
	Args:          cobra.RangeArgs(1, 2),
	RunE:          runFind,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	f := findCmd.Flags()
	f.BoolVarP(&findAll, "all", "a", false, "Report every occurrence, overlapping (default: first only)")
	f.BoolVarP(&findReverse, "reverse", "r", false, "Search right-to-left")
	f.BoolVarP(&findCount, "count", "c", false, "Print only the number of occurrences")
}

func runFind(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	file := ""
	if len(args) == 2 {
		file = args[1]
	}

	compile := substr.Compile
	if findReverse {
		compile = substr.CompileReverse
	}
	p, err := compile(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}

	haystack, err := readInput(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}

	if findCount {
		fmt.Println(len(p.FindAll(haystack)))
		return nil
	}
	if !findAll {
		if at := p.Find(haystack); at >= 0 {
			fmt.Println(at)
		}
		return nil
	}
	for _, at := range p.FindAll(haystack) {
		fmt.Println(at)
	}
	return nil
}
