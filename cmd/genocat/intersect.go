// Intersect command finds annotations overlapping a query region.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/biotypes/pkg/annot"
)

var intersectCmd = &cobra.Command{
	Use:   "intersect <region>",
	Short: "Find annotations overlapping a region",
	Long: `Intersect finds every annotation whose location overlaps the query
region, and prints the exact overlap of each annotation. Exons that
fall outside the query region are trimmed away.

  genocat intersect "chrXVI:66000-68000"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := annot.ParseContig(args[0])
		if err != nil {
			fail("intersect", err, exitUserError)
		}

		cat, err := openCatalog()
		if err != nil {
			fail("intersect", err, exitSysError)
		}
		defer cat.Close()

		hits, err := cat.Overlapping(query)
		if err != nil {
			fail("intersect", err, exitSysError)
		}

		type hitJSON struct {
			annotationJSON
			Intersection string `json:"intersection"`
		}
		out := make([]hitJSON, 0, len(hits))
		for _, hit := range hits {
			overlap, ok := hit.Location.Intersection(query)
			if !ok {
				// Covers can overlap while every exon misses the query.
				continue
			}
			out = append(out, hitJSON{
				annotationJSON: toJSON(hit),
				Intersection:   overlap.String(),
			})
		}

		if flagJSON {
			return printJSON(out)
		}
		for _, h := range out {
			fmt.Printf("%s\t%s\t%s\t%s\n", h.ID, h.Name, h.Location, h.Intersection)
		}
		return nil
	},
}
