package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	probeCmd := &cobra.Command{
		Use:   "probe FILE",
		Short: "Show technical metadata for a media file",
		Args:  cobra.ExactArgs(1),
		RunE:  runProbe,
	}
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.prober().Probe(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{
			"length":   result.Length(),
			"language": result.Language,
		})
	}
	fmt.Printf("length:   %s\n", result.Length())
	fmt.Printf("language: %s\n", result.Language)
	return nil
}
