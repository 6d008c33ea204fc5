package main

import (
	"fmt"
	"io"
	"os"
)

type commandRunner interface {
	Run(args []string) error
}

type commandWiring struct {
	stdout io.Writer
	stderr io.Writer
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{stdout: stdout, stderr: stderr}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"browse": NewBrowseCommand(wiring.stderr),
		"nav":    NewNavCommand(wiring.stdout, wiring.stderr),
		"check":  NewCheckCommand(wiring.stdout, wiring.stderr),
		"config": NewConfigCommand(wiring.stdout, wiring.stderr),
	}
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}
