// Get command retrieves an annotation by ID.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/biotypes/internal/catalog"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve an annotation by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		cat, err := openCatalog()
		if err != nil {
			fail("get", err, exitSysError)
		}
		defer cat.Close()

		a, err := cat.Get(id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "annotation %q not found\n", id)
				os.Exit(exitUserError)
			}
			fail("get", err, exitSysError)
		}

		return printAnnotation(a)
	},
}
