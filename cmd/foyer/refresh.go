package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Reconcile the catalog with the library folder",
		Long:  "Diffs the persisted catalog against the files on disk, removing stale entries and enriching newly discovered ones.",
		RunE:  runRefresh,
	}
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	stats, err := app.reconciler().Run(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(stats)
	}
	fmt.Printf("scanned %d, inserted %d, deleted %d, skipped %d\n",
		stats.Scanned, stats.Inserted, stats.Deleted, stats.Skipped)
	return nil
}
