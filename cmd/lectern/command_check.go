package main

import (
	"fmt"
	"io"

	"lectern/internal/config"
	"lectern/internal/site"
)

type CheckCommand struct {
	stdout io.Writer
	stderr io.Writer
}

func NewCheckCommand(stdout, stderr io.Writer) *CheckCommand {
	return &CheckCommand{stdout: stdout, stderr: stderr}
}

func (c *CheckCommand) Run(args []string) error {
	fs := newFlagSet("check", c.stderr)
	docsFlag := addDocsFlag(fs)
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

	problems := checkLinks(registry)
	for _, problem := range problems {
		fmt.Fprintln(c.stdout, problem)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d broken link(s)", len(problems))
	}
	fmt.Fprintln(c.stdout, "all internal links resolve")
	return nil
}

// checkLinks reports internal links whose route or fragment does not
// resolve. External links are out of scope.
func checkLinks(registry *site.Registry) []string {
	var problems []string
	for _, doc := range registry.Documents() {
		for _, link := range doc.Links {
			if link.External {
				continue
			}
			if !registry.KnownRoute(link.Route) {
				problems = append(problems, fmt.Sprintf("%s: %q -> unknown route %s", doc.Route, link.Raw, link.Route))
				continue
			}
			if link.Fragment == "" {
				continue
			}
			if _, ok := registry.Resolve(link.Route, link.Fragment); !ok {
				problems = append(problems, fmt.Sprintf("%s: %q -> no anchor #%s in %s", doc.Route, link.Raw, link.Fragment, link.Route))
			}
		}
	}
	return problems
}
