// Init command for the genocat CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize genocat storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fail("init", err, exitSysError)
		}
		if err := ensureConfigDir(configDir); err != nil {
			fail("init", err, exitSysError)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fail("init", err, exitSysError)
		}

		// Opening creates the data directory and the catalog schema.
		cat, err := openCatalog()
		if err != nil {
			fail("init", err, exitSysError)
		}
		defer cat.Close()

		dataDir, err := resolveDataDir()
		if err != nil {
			fail("init", err, exitSysError)
		}

		fmt.Println("Genocat initialized successfully")
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		return nil
	},
}
