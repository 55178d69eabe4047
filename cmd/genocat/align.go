// Align command runs a pairwise alignment of two sequences.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/biotypes/pkg/alignment"
)

var (
	flagAlignMode     = alignment.Global
	flagAlignMatch    int
	flagAlignMismatch int
	flagAlignGap      int
)

var alignCmd = &cobra.Command{
	Use:   "align <query> <reference>",
	Short: "Align two sequences",
	Long: `Align computes a pairwise alignment of the query sequence against
the reference sequence and prints the score, the CIGAR string, and the
aligned sequences.

  genocat align GATTACA GATGACA
  genocat align --mode local ACGT TTACGTT`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y := []byte(args[0]), []byte(args[1])

		sc := alignment.Scoring{
			Match:    flagAlignMatch,
			Mismatch: flagAlignMismatch,
			Gap:      flagAlignGap,
		}
		a := alignment.Align(x, y, sc, flagAlignMode)

		if flagJSON {
			return printJSON(struct {
				Mode   string `json:"mode"`
				Score  int    `json:"score"`
				Cigar  string `json:"cigar"`
				XStart int    `json:"x_start"`
				XEnd   int    `json:"x_end"`
				YStart int    `json:"y_start"`
				YEnd   int    `json:"y_end"`
			}{
				Mode:   a.Mode.String(),
				Score:  a.Score,
				Cigar:  a.Cigar(false),
				XStart: a.XStart,
				XEnd:   a.XEnd,
				YStart: a.YStart,
				YEnd:   a.YEnd,
			})
		}

		fmt.Println("score:", a.Score)
		fmt.Println("cigar:", a.Cigar(false))
		fmt.Print(a.Pretty(x, y, 80))
		return nil
	},
}

func init() {
	alignCmd.Flags().Var(&flagAlignMode, "mode", "alignment mode: "+strings.Join(alignment.Modes(), ", "))
	alignCmd.Flags().IntVar(&flagAlignMatch, "match", 1, "score for a matching pair")
	alignCmd.Flags().IntVar(&flagAlignMismatch, "mismatch", -1, "score for a mismatching pair")
	alignCmd.Flags().IntVar(&flagAlignGap, "gap", -1, "score per gap base")
}
