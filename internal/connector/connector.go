// Package connector models the kiosk launch icons and the behavior behind
// each of them. The behavior is picked at configuration-load time, one
// Activator implementation per connector kind; nothing inspects types at
// runtime.
package connector

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/foyerhq/foyer/internal/catalog"
	"github.com/foyerhq/foyer/internal/config"
	"github.com/foyerhq/foyer/internal/reconcile"
)

// Connector describes one launch icon.
type Connector struct {
	Name     string
	IconPath string
}

// Activator is the single capability behind a connector: open it. Close
// tears down whatever Activate started.
type Activator interface {
	Connector() Connector
	Activate(ctx context.Context) error
	Close() error
}

// Reconciler runs the catalog refresh pass.
type Reconciler interface {
	Run(ctx context.Context) (reconcile.Stats, error)
}

// Lister reads the refreshed catalog.
type Lister interface {
	All() ([]*catalog.VideoRecord, error)
}

// Deps carries the collaborators the built-in activators need.
type Deps struct {
	Reconciler Reconciler
	Store      Lister
	Log        *slog.Logger
}

// BuildActivators maps each configured connector to its activator, keyed by
// connector name.
func BuildActivators(conns []config.ConnectorConfig, deps Deps) (map[string]Activator, error) {
	out := make(map[string]Activator, len(conns))
	for _, cc := range conns {
		conn := Connector{Name: cc.Name, IconPath: cc.Icon}
		switch cc.Kind {
		case "library":
			out[cc.Name] = NewLibraryActivator(conn, deps.Reconciler, deps.Store, deps.Log)
		case "site":
			out[cc.Name] = NewSiteActivator(conn, cc, deps.Log)
		default:
			return nil, fmt.Errorf("connector %s: unknown kind %q", cc.Name, cc.Kind)
		}
	}
	return out, nil
}
