package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/foyerhq/foyer/internal/catalog"
)

// libraryEntry is the JSON shape for one catalog record.
type libraryEntry struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Year     string   `json:"year,omitempty"`
	Director string   `json:"director,omitempty"`
	Language string   `json:"language"`
	Length   string   `json:"length"`
	Genres   []string `json:"genres,omitempty"`
	Path     string   `json:"path"`
}

func init() {
	libraryCmd := &cobra.Command{
		Use:   "library",
		Short: "List the cataloged videos",
		RunE:  runLibrary,
	}
	rootCmd.AddCommand(libraryCmd)
}

func runLibrary(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	records, err := app.store.All()
	if err != nil {
		return err
	}

	if jsonOutput {
		entries := make([]libraryEntry, 0, len(records))
		for _, r := range records {
			entries = append(entries, toEntry(r))
		}
		return json.NewEncoder(os.Stdout).Encode(entries)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tYEAR\tDIRECTOR\tLANGUAGE\tLENGTH\tGENRES")
	for _, r := range records {
		title := r.Title
		if title == "" {
			title = r.FullPath
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			title, r.Year, r.Director, r.Language, r.Length, strings.Join(r.Genres, ", "))
	}
	return w.Flush()
}

func toEntry(r *catalog.VideoRecord) libraryEntry {
	return libraryEntry{
		ID:       r.ID,
		Title:    r.Title,
		Year:     r.Year,
		Director: r.Director,
		Language: r.Language,
		Length:   r.Length,
		Genres:   r.Genres,
		Path:     r.FullPath,
	}
}
