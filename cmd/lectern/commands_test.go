package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestDocs(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	docs := map[string]string{
		"index.md":       "# Home\n\n## Welcome\n\nStart with the [guide](guide/setup.md#basics).\n",
		"guide/setup.md": "# Setup\n\n## Basics\n\n## Advanced\n\nBack to [home](../index.md). Broken: [gone](missing.md).\n",
	}
	for rel, content := range docs {
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return root
}

func TestBuildCommandsRegistersAll(t *testing.T) {
	commands := buildCommands(defaultCommandWiring(&bytes.Buffer{}, &bytes.Buffer{}))
	for _, name := range []string{"browse", "nav", "check", "config"} {
		if _, ok := commands[name]; !ok {
			t.Fatalf("expected %s command registered", name)
		}
	}
}

func TestNavCommandPrintsTree(t *testing.T) {
	root := writeTestDocs(t)
	stdout := &bytes.Buffer{}
	cmd := NewNavCommand(stdout, &bytes.Buffer{})

	if err := cmd.Run([]string{"--docs", root, "--anchors"}); err != nil {
		t.Fatalf("nav: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{"Home", "Setup", "Welcome", "#basics", "#advanced"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in nav output:\n%s", want, out)
		}
	}
}

func TestCheckCommandReportsBrokenLinks(t *testing.T) {
	root := writeTestDocs(t)
	stdout := &bytes.Buffer{}
	cmd := NewCheckCommand(stdout, &bytes.Buffer{})

	err := cmd.Run([]string{"--docs", root})
	if err == nil {
		t.Fatalf("expected broken link to fail the check")
	}
	if !strings.Contains(stdout.String(), "missing") {
		t.Fatalf("expected broken route named in output:\n%s", stdout.String())
	}
}

func TestCheckCommandPassesCleanCorpus(t *testing.T) {
	root := t.TempDir()
	content := "# Only\n\n## One\n\nSee [one](#one).\n"
	if err := os.WriteFile(filepath.Join(root, "only.md"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	stdout := &bytes.Buffer{}
	cmd := NewCheckCommand(stdout, &bytes.Buffer{})

	if err := cmd.Run([]string{"--docs", root}); err != nil {
		t.Fatalf("expected clean corpus to pass, got %v", err)
	}
	if !strings.Contains(stdout.String(), "resolve") {
		t.Fatalf("expected success message, got:\n%s", stdout.String())
	}
}

func TestConfigCommandDefaults(t *testing.T) {
	stdout := &bytes.Buffer{}
	cmd := NewConfigCommand(stdout, &bytes.Buffer{})

	if err := cmd.Run([]string{"--defaults", "--format", "toml"}); err != nil {
		t.Fatalf("config: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{"[docs]", "[viewport]", "focus_band_fraction"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in config output:\n%s", want, out)
		}
	}
}

func TestConfigCommandJSON(t *testing.T) {
	stdout := &bytes.Buffer{}
	cmd := NewConfigCommand(stdout, &bytes.Buffer{})

	if err := cmd.Run([]string{"--defaults", "--format", "json"}); err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(stdout.String(), "\"focus_top_offset\"") {
		t.Fatalf("expected json keys, got:\n%s", stdout.String())
	}
	if err := cmd.Run([]string{"--format", "yaml"}); err == nil {
		t.Fatalf("expected unknown format to fail")
	}
}

func TestBrowseCommandRejectsExtraArgs(t *testing.T) {
	cmd := NewBrowseCommand(&bytes.Buffer{})
	if err := cmd.Run([]string{"a#b", "c#d"}); err == nil {
		t.Fatalf("expected more than one target to fail")
	}
}
