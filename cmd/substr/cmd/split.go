package cmd

import (
	"fmt"
	"os"

	"github.com/coregx/substr"
	"github.com/spf13/cobra"
)

var (
	splitFirst bool
	splitLast  bool
)

var splitCmd = &cobra.Command{
	Use:           "split [flags] <separator> [file]",
	Short:         "Split input on a literal separator",
	Long:          "Splits the input on every occurrence of the separator and prints one field per line. Empty fields print as empty lines, so the output reassembles exactly.",
	Args:          cobra.RangeArgs(1, 2),
	RunE:          runSplit,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	f := splitCmd.Flags()
	f.BoolVar(&splitFirst, "first", false, "Split only on the leftmost occurrence")
	f.BoolVar(&splitLast, "last", false, "Split only on the rightmost occurrence")
}

func runSplit(cmd *cobra.Command, args []string) error {
	sep := []byte(args[0])
	file := ""
	if len(args) == 2 {
		file = args[1]
	}

	haystack, err := readInput(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}

	switch {
	case splitFirst:
		before, after, found, err := substr.Cut(haystack, sep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return err
		}
		if !found {
			fmt.Printf("%s\n", haystack)
			return nil
		}
		fmt.Println(before.String())
		fmt.Println(after.String())
	case splitLast:
		before, after, found, err := substr.CutLast(haystack, sep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return err
		}
		if !found {
			fmt.Printf("%s\n", haystack)
			return nil
		}
		fmt.Println(before.String())
		fmt.Println(after.String())
	default:
		it, err := substr.Split(haystack, sep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return err
		}
		for s, ok := it.Next(); ok; s, ok = it.Next() {
			fmt.Println(s.String())
		}
	}
	return nil
}
