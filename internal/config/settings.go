package config

import (
	"errors"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultDocsDir           = "docs"
	defaultFocusTopOffset    = 2
	defaultFocusBandFraction = 0.45
	defaultScrollDuration    = 240 * time.Millisecond
	defaultMarkdownStyle     = "auto"
)

// Config is the reader configuration, loaded from ~/.lectern/config.toml.
// Every accessor falls back to a sane default so a partial or missing file
// never fails.
type Config struct {
	Docs     DocsConfig     `toml:"docs" json:"docs"`
	Viewport ViewportConfig `toml:"viewport" json:"viewport"`
	Markdown MarkdownConfig `toml:"markdown" json:"markdown"`
	Logging  LoggingConfig  `toml:"logging" json:"logging"`
}

type DocsConfig struct {
	Dir string `toml:"dir" json:"dir"`
}

// ViewportConfig tunes the focus band: the horizontal slice of the viewport
// that decides which section is "in focus". The geometry is a heuristic, not
// a contract; only the topmost-wins tie-break is fixed behavior.
type ViewportConfig struct {
	FocusTopOffset    int     `toml:"focus_top_offset" json:"focus_top_offset"`
	FocusBandFraction float64 `toml:"focus_band_fraction" json:"focus_band_fraction"`
	ScrollDurationMS  int     `toml:"scroll_duration_ms" json:"scroll_duration_ms"`
}

type MarkdownConfig struct {
	Style string `toml:"style" json:"style"`
}

type LoggingConfig struct {
	Level string `toml:"level" json:"level"`
}

func DefaultConfig() Config {
	return Config{
		Docs: DocsConfig{Dir: defaultDocsDir},
		Viewport: ViewportConfig{
			FocusTopOffset:    defaultFocusTopOffset,
			FocusBandFraction: defaultFocusBandFraction,
			ScrollDurationMS:  int(defaultScrollDuration / time.Millisecond),
		},
		Markdown: MarkdownConfig{Style: defaultMarkdownStyle},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Load reads the config file, layering it over defaults. A missing file is
// not an error.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}
	return loadFromPath(path)
}

func loadFromPath(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

func (c Config) DocsDir() string {
	dir := strings.TrimSpace(c.Docs.Dir)
	if dir == "" {
		return defaultDocsDir
	}
	return dir
}

// FocusTopOffset is how many lines below the viewport top the focus band
// starts, biasing toward content just under the header.
func (c Config) FocusTopOffset() int {
	if c.Viewport.FocusTopOffset < 0 {
		return defaultFocusTopOffset
	}
	return c.Viewport.FocusTopOffset
}

// FocusBandFraction is the share of the viewport height the focus band
// spans; the disproportionate remainder below it is excluded.
func (c Config) FocusBandFraction() float64 {
	f := c.Viewport.FocusBandFraction
	if f <= 0 || f > 1 {
		return defaultFocusBandFraction
	}
	return f
}

func (c Config) ScrollDuration() time.Duration {
	if c.Viewport.ScrollDurationMS <= 0 {
		return defaultScrollDuration
	}
	return time.Duration(c.Viewport.ScrollDurationMS) * time.Millisecond
}

func (c Config) MarkdownStyle() string {
	style := strings.ToLower(strings.TrimSpace(c.Markdown.Style))
	switch style {
	case "dark", "light", "auto":
		return style
	default:
		return defaultMarkdownStyle
	}
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return "info"
	}
	return level
}

// Dump renders the effective configuration as TOML.
func (c Config) Dump() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
