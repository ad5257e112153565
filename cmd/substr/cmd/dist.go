package cmd

import (
	"fmt"

	"github.com/coregx/substr/editdist"
	"github.com/spf13/cobra"
)

var (
	distLimit int
	distRatio bool
)

var distCmd = &cobra.Command{
	Use:           "dist [flags] <a> <b>",
	Short:         "Levenshtein distance between two strings",
	Args:          cobra.ExactArgs(2),
	RunE:          runDist,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	f := distCmd.Flags()
	f.IntVarP(&distLimit, "limit", "l", -1, "Cap the distance; anything above prints limit+1")
	f.BoolVar(&distRatio, "ratio", false, "Print a similarity ratio in [0,1] instead")
}

func runDist(cmd *cobra.Command, args []string) error {
	a, b := args[0], args[1]
	switch {
	case distRatio:
		fmt.Printf("%.4f\n", editdist.Ratio(a, b))
	case distLimit >= 0:
		fmt.Println(editdist.DistanceThreshold(a, b, distLimit))
	default:
		fmt.Println(editdist.Distance(a, b))
	}
	return nil
}
