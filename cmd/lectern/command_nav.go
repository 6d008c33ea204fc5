package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"lectern/internal/config"
	"lectern/internal/site"
)

type NavCommand struct {
	stdout io.Writer
	stderr io.Writer
}

func NewNavCommand(stdout, stderr io.Writer) *NavCommand {
	return &NavCommand{stdout: stdout, stderr: stderr}
}

func (c *NavCommand) Run(args []string) error {
	fs := newFlagSet("nav", c.stderr)
	docsFlag := addDocsFlag(fs)
	anchors := fs.Bool("anchors", false, "include anchor fragments")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	registry, err := loadRegistry(cfg, *docsFlag)
	if err != nil {
		return err
	}
	printNavTree(c.stdout, registry, *anchors)
	return nil
}

func printNavTree(output io.Writer, registry *site.Registry, anchors bool) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	for _, group := range registry.Groups() {
		fmt.Fprintf(writer, "%s\t%s\n", group.Label, group.Route)
		for _, section := range registry.SectionsFor(group.Route) {
			indent := strings.Repeat("  ", section.Level-1)
			if anchors {
				fmt.Fprintf(writer, "%s%s\t#%s\n", indent, section.Label, section.Anchor)
			} else {
				fmt.Fprintf(writer, "%s%s\t\n", indent, section.Label)
			}
		}
	}
	_ = writer.Flush()
}
