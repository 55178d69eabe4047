// Version command for the genocat CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/biotypes/pkg/biotypes"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the genocat version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("genocat", biotypes.Version)
	},
}
