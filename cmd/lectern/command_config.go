package main

import (
	"encoding/json"
	"fmt"
	"io"

	"lectern/internal/config"
)

const (
	configFormatTOML = "toml"
	configFormatJSON = "json"
)

type ConfigCommand struct {
	stdout io.Writer
	stderr io.Writer
}

func NewConfigCommand(stdout, stderr io.Writer) *ConfigCommand {
	return &ConfigCommand{stdout: stdout, stderr: stderr}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := newFlagSet("config", c.stderr)
	format := fs.String("format", configFormatTOML, "output format: toml or json")
	defaults := fs.Bool("defaults", false, "print built-in defaults instead of the effective config")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if !*defaults {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
	}

	switch *format {
	case configFormatTOML:
		out, err := cfg.Dump()
		if err != nil {
			return err
		}
		fmt.Fprint(c.stdout, out)
	case configFormatJSON:
		encoder := json.NewEncoder(c.stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(cfg); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", *format)
	}
	return nil
}
