// Package catalogcmd handles rule catalog inspection commands
package catalogcmd

import (
	"github.com/spf13/cobra"

	"snapengine/cmd/root"
	"snapengine/internal/catalog"
)

// Cmd represents the catalog command
var Cmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the active rule catalog",
	Long: `Load the rule catalog (the configured YAML override, or the built-in
rules) and print its version and per-tier rule counts. Use this to verify an
override file before putting it in front of real statements.`,
	Run: catalogFunc,
}

func catalogFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	file := root.Cfg.Catalog.File
	if root.SharedFlags.Input != "" {
		file = root.SharedFlags.Input
	}

	cat, err := catalog.NewStore(file, logger).Load()
	if err != nil {
		root.Log.Fatalf("Error loading rule catalog: %v", err)
	}

	root.Log.Infof("Catalog version: %s", cat.Version())
	root.Log.Infof("Total rules: %d", cat.Len())
	for _, kind := range catalog.SignalPriority {
		root.Log.Infof("  %s: %d", kind, len(cat.Rules(kind)))
	}
}
