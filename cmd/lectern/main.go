package main

import (
	"fmt"
	"os"
	"strings"
)

const usageText = `lectern is a terminal documentation browser.

Usage:
  lectern [command] [flags]

Commands:
  browse   open the documentation browser (default)
  nav      print the navigation tree
  check    validate internal links and anchors
  config   print effective configuration
  help     show help

Flags:
  -h, --help   show help

Examples:
  lectern browse --docs ./docs
  lectern browse --docs ./docs guide/install#configuration
  lectern nav --docs ./docs
  lectern check --docs ./docs
  lectern config --format toml
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]

	wiring := defaultCommandWiring(os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	name := "browse"
	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help", "help":
			printUsage()
			return
		}
		if _, ok := commands[args[0]]; ok {
			name = args[0]
			args = args[1:]
		} else if !strings.HasPrefix(args[0], "-") {
			fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
			printUsage()
			os.Exit(2)
		}
	}

	exitOnErr(name, commands[name].Run(args), wiring.stderr)
}
