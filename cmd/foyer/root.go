package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "foyer",
	Short: "Kiosk launcher for a local media library",
	Long: `foyer - kiosk launcher for a local media library

Scans a media folder, enriches each file with catalog metadata and
artwork, and exposes launch connectors for the local library and
external streaming sites.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("foyer {{.Version}}\n")
}
