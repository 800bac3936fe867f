package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	resolveCmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Resolve remote catalog metadata for a media file",
		Long:  "Probes the file for runtime and language, then queries the metadata provider and prints what a reconciliation pass would store.",
		Args:  cobra.ExactArgs(1),
		RunE:  runResolve,
	}
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	probed, err := app.prober().Probe(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	md := app.resolver().Resolve(cmd.Context(), filepath.Base(args[0]), probed.Duration, probed.Language)

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(md)
	}
	if md.Title == "" {
		fmt.Println("no match")
		return nil
	}
	fmt.Printf("title:    %s (%s)\n", md.Title, md.Year)
	fmt.Printf("director: %s\n", md.Director)
	fmt.Printf("language: %s\n", md.Language)
	fmt.Printf("genres:   %s\n", strings.Join(md.Genres, ", "))
	fmt.Printf("overview: %s\n", md.Overview)
	return nil
}
