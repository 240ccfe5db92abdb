package commands

import (
	"github.com/spf13/cobra"

	"gotest1/internal/config"
	"gotest1/internal/storage"
	"gotest1/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	return vc.viewer.View(vc.logPath())
}

// logPath prefers --log, then the last recorded run, then the configured default
func (vc *ViewCommand) logPath() string {
	if vc.config.Flags.LogPath != "" {
		return vc.config.Flags.LogPath
	}
	if record, err := vc.storage.Load(); err == nil && record.LogPath != "" {
		return record.LogPath
	}
	return vc.config.GetLogPath()
}
