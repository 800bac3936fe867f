package connector

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
	"syscall"

	"github.com/foyerhq/foyer/internal/config"
)

// defaultBrowser launches Chrome installed via Flatpak, the setup the kiosk
// boxes run.
var defaultBrowser = []string{"flatpak", "run", "com.google.Chrome"}

// SiteActivator backs an external-site connector: activating it launches a
// browser process at the configured URL. The process is started in its own
// process group so Close can take down the whole browser tree, not just the
// wrapper.
type SiteActivator struct {
	conn    Connector
	command []string
	log     *slog.Logger

	mu  sync.Mutex
	cmd *exec.Cmd
}

// NewSiteActivator builds the browser command line from the connector
// configuration.
func NewSiteActivator(conn Connector, cc config.ConnectorConfig, log *slog.Logger) *SiteActivator {
	browser := cc.Browser
	if len(browser) == 0 {
		browser = defaultBrowser
	}

	command := make([]string, 0, len(browser)+len(cc.Args)+2)
	command = append(command, browser...)
	command = append(command, cc.Args...)
	if cc.Profile != "" {
		command = append(command, "--profile-directory="+cc.Profile)
	}
	command = append(command, cc.URL)

	return &SiteActivator{
		conn:    conn,
		command: command,
		log:     log.With("component", "connector", "connector", conn.Name),
	}
}

// Connector returns the launch icon descriptor.
func (a *SiteActivator) Connector() Connector { return a.conn }

// Activate launches the browser. A connector already showing a browser is
// not relaunched.
func (a *SiteActivator) Activate(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cmd != nil {
		return fmt.Errorf("connector %s already active", a.conn.Name)
	}

	cmd := exec.CommandContext(ctx, a.command[0], a.command[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch browser for %s: %w", a.conn.Name, err)
	}
	a.cmd = cmd
	a.log.Info("browser launched", "pid", cmd.Process.Pid)

	go func() {
		_ = cmd.Wait()
		a.mu.Lock()
		if a.cmd == cmd {
			a.cmd = nil
		}
		a.mu.Unlock()
		a.log.Info("browser exited")
	}()

	return nil
}

// Close terminates the browser's whole process group. Closing an inactive
// connector is a no-op.
func (a *SiteActivator) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cmd == nil || a.cmd.Process == nil {
		return nil
	}
	pid := a.cmd.Process.Pid
	a.cmd = nil

	if err := syscall.Kill(-pid, syscall.SIGTERM); err != nil {
		return fmt.Errorf("terminate browser group %d: %w", pid, err)
	}
	a.log.Info("browser terminated", "pid", pid)
	return nil
}
