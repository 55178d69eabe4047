// Delete command removes an annotation from the catalog.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/biotypes/internal/catalog"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an annotation by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		cat, err := openCatalog()
		if err != nil {
			fail("delete", err, exitSysError)
		}
		defer cat.Close()

		if err := cat.Delete(id); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "annotation %q not found\n", id)
				os.Exit(exitUserError)
			}
			fail("delete", err, exitSysError)
		}

		fmt.Println("Deleted", id)
		return nil
	},
}
