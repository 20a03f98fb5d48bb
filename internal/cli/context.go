// Package cli provides the command layer of the finder-sidebar tool. It
// validates user input, calls the sidebar facade and renders results. It
// bridges cobra commands to the sidebar package.
package cli

import (
	"fmt"
	"io"

	"github.com/zoro11031/finder-sidebar/internal/config"
	"github.com/zoro11031/finder-sidebar/internal/sidebar"
	"github.com/zoro11031/finder-sidebar/internal/system"
	"github.com/zoro11031/finder-sidebar/internal/ui"
)

// SidebarContext holds all dependencies needed by one command invocation
type SidebarContext struct {
	Config  *config.Config
	UI      *ui.UI
	FS      system.PathChecker
	Out     io.Writer // command results
	Sidebar *sidebar.Sidebar

	services sidebar.Services
}

// NewSidebarContext opens the native sidebar services for this process.
// Command results are written to out.
func NewSidebarContext(cfg *config.Config, u *ui.UI, out io.Writer) (*SidebarContext, error) {
	svc, err := sidebar.Open(system.NewCommandRunner())
	if err != nil {
		return nil, err
	}

	ctx, err := NewSidebarContextWithServices(cfg, u, svc, system.NewFileSystem(), out)
	if err != nil {
		_ = svc.Close()
		return nil, err
	}
	return ctx, nil
}

// NewSidebarContextWithServices creates a SidebarContext over explicit
// services, filesystem and output (useful for testing)
func NewSidebarContextWithServices(cfg *config.Config, u *ui.UI, svc sidebar.Services, fs system.PathChecker, out io.Writer) (*SidebarContext, error) {
	sb, err := sidebar.New(svc)
	if err != nil {
		return nil, fmt.Errorf("failed to read the sidebar: %w", err)
	}

	u.Debugf("sidebar snapshot has %d items", len(sb.Snapshot().Items))

	return &SidebarContext{
		Config:   cfg,
		UI:       u,
		FS:       fs,
		Out:      out,
		Sidebar:  sb,
		services: svc,
	}, nil
}

// Close releases the native list handle
func (c *SidebarContext) Close() error {
	return c.services.Close()
}
