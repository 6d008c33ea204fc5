package app

import "strings"

type hotkey struct {
	keys string
	desc string
}

var normalHotkeys = []hotkey{
	{"j/k", "scroll"},
	{"n/p", "tree"},
	{"enter", "open"},
	{"tab", "links"},
	{"/", "jump"},
	{"y", "copy link"},
	{"[/]", "docs"},
	{"q", "quit"},
}

var jumpHotkeys = []hotkey{
	{"enter", "go"},
	{"esc", "close"},
}

// helpLine renders the single-line hotkey legend for the current mode.
func helpLine(mode uiMode, linkFocused bool) string {
	entries := normalHotkeys
	if mode == uiModeJump {
		entries = jumpHotkeys
	}
	parts := make([]string, 0, len(entries)+1)
	for _, entry := range entries {
		parts = append(parts, entry.keys+" "+entry.desc)
	}
	if mode == uiModeNormal && linkFocused {
		parts = append(parts, "o follow")
	}
	return strings.Join(parts, "  ")
}
