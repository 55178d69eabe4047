// List command prints all annotations in the catalog.
package main

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all annotations",
	Long: `List prints every annotation in the catalog, ordered by
reference and start coordinate.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			fail("list", err, exitSysError)
		}
		defer cat.Close()

		annotations, err := cat.List()
		if err != nil {
			fail("list", err, exitSysError)
		}

		return printAnnotations(annotations)
	},
}
