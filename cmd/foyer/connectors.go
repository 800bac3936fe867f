package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/foyerhq/foyer/internal/connector"
)

func init() {
	connectorsCmd := &cobra.Command{
		Use:   "connectors",
		Short: "List the configured launch connectors",
		RunE:  runConnectors,
	}

	openCmd := &cobra.Command{
		Use:   "open NAME",
		Short: "Activate a connector",
		Long: `Activate a connector by name.

A library connector refreshes the catalog and lists its entries. A site
connector launches the configured browser and keeps it open until
interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: runOpen,
	}

	rootCmd.AddCommand(connectorsCmd)
	rootCmd.AddCommand(openCmd)
}

func runConnectors(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(app.cfg.Connectors)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tURL")
	for _, c := range app.cfg.Connectors {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.Kind, c.URL)
	}
	return w.Flush()
}

func runOpen(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	activators, err := connector.BuildActivators(app.cfg.Connectors, connector.Deps{
		Reconciler: app.reconciler(),
		Store:      app.store,
		Log:        app.log,
	})
	if err != nil {
		return err
	}

	activator, ok := activators[args[0]]
	if !ok {
		return fmt.Errorf("unknown connector %q", args[0])
	}

	var kind string
	for _, c := range app.cfg.Connectors {
		if c.Name == args[0] {
			kind = c.Kind
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := activator.Activate(ctx); err != nil {
		return err
	}

	if kind == "library" {
		records, err := app.store.All()
		if err != nil {
			return err
		}
		for _, r := range records {
			title := r.Title
			if title == "" {
				title = r.FullPath
			}
			fmt.Printf("%s (%s) [%s]\n", title, r.Year, r.Length)
		}
		return nil
	}

	// Keep the browser up until the user interrupts.
	<-ctx.Done()
	return activator.Close()
}
