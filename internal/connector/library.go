package connector

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/foyerhq/foyer/internal/catalog"
)

// LibraryActivator backs the local-library connector: activating it runs a
// reconciliation pass and loads the refreshed catalog.
type LibraryActivator struct {
	conn       Connector
	reconciler Reconciler
	store      Lister
	log        *slog.Logger

	mu      sync.Mutex
	records []*catalog.VideoRecord
}

// NewLibraryActivator wires the library connector to its collaborators.
func NewLibraryActivator(conn Connector, reconciler Reconciler, store Lister, log *slog.Logger) *LibraryActivator {
	return &LibraryActivator{
		conn:       conn,
		reconciler: reconciler,
		store:      store,
		log:        log.With("component", "connector", "connector", conn.Name),
	}
}

// Connector returns the launch icon descriptor.
func (a *LibraryActivator) Connector() Connector { return a.conn }

// Activate refreshes the catalog against the library folder and loads the
// resulting records.
func (a *LibraryActivator) Activate(ctx context.Context) error {
	stats, err := a.reconciler.Run(ctx)
	if err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}

	records, err := a.store.All()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	a.mu.Lock()
	a.records = records
	a.mu.Unlock()

	a.log.Info("library opened",
		"entries", len(records), "inserted", stats.Inserted, "deleted", stats.Deleted)
	return nil
}

// Records returns the catalog loaded by the last Activate, title-ordered.
func (a *LibraryActivator) Records() []*catalog.VideoRecord {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.records
}

// Close has nothing to tear down for the library connector.
func (a *LibraryActivator) Close() error { return nil }
