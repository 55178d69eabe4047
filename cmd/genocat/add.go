// Add command stores a new annotation in the catalog.
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/biotypes/pkg/annot"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <location>",
	Short: "Add a named annotation",
	Long: `Add stores a named annotation at a genomic location.

Locations use 0-based half-open coordinates, with optional additional
exon ranges and an optional strand:

  genocat add YAL037W "chrI:74020-74823(+)"
  genocat add RPL7B "chrXVI:66400-66775;67843-69306(+)"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, location := args[0], args[1]

		cat, err := openCatalog()
		if err != nil {
			fail("add", err, exitSysError)
		}
		defer cat.Close()

		added, err := cat.Add(name, location)
		if err != nil {
			if errors.Is(err, annot.ErrBadAnnot) || errors.Is(err, annot.ErrEndBeforeStart) {
				fail("add", err, exitUserError)
			}
			fail("add", err, exitSysError)
		}

		return printAnnotation(added)
	},
}
