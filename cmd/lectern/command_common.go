package main

import (
	"flag"
	"io"

	"lectern/internal/config"
	"lectern/internal/site"
)

// loadRegistry resolves the docs directory (flag beats config) and builds
// the section registry from it.
func loadRegistry(cfg config.Config, docsFlag string) (*site.Registry, error) {
	dir := cfg.DocsDir()
	if docsFlag != "" {
		dir = docsFlag
	}
	return site.Load(dir)
}

func addDocsFlag(fs *flag.FlagSet) *string {
	return fs.String("docs", "", "documentation directory (overrides config)")
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}
