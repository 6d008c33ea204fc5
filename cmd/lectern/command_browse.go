package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"lectern/internal/app"
	"lectern/internal/config"
	"lectern/internal/logging"
	"lectern/internal/types"
)

type BrowseCommand struct {
	stderr io.Writer
}

func NewBrowseCommand(stderr io.Writer) *BrowseCommand {
	return &BrowseCommand{stderr: stderr}
}

func (c *BrowseCommand) Run(args []string) error {
	fs := newFlagSet("browse", c.stderr)
	docsFlag := addDocsFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("browse: at most one target, got %d", fs.NArg())
	}
	var target types.Location
	if fs.NArg() == 1 {
		target = types.ParseLocation(fs.Arg(0))
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	registry, err := loadRegistry(cfg, *docsFlag)
	if err != nil {
		return err
	}

	log := browseLogger(cfg)
	model := app.NewModel(registry, cfg, log, target)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	return err
}

// browseLogger sends structured logs to the data-dir log file; the terminal
// belongs to the UI. Any failure along the way degrades to a no-op logger.
func browseLogger(cfg config.Config) logging.Logger {
	path, err := config.UILogPath()
	if err != nil {
		return logging.Nop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return logging.Nop()
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return logging.Nop()
	}
	return logging.New(file, logging.ParseLevel(cfg.LogLevel()))
}
