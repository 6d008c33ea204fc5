package site

import (
	"path"
	"strings"

	"lectern/internal/types"
)

// resolveHref turns a raw href from document markup into a resolved link
// target. Targets are expressed as routes and fragments so callers never have
// to compare raw href strings; anything with a scheme stays external.
func resolveHref(currentRoute, label, raw string) types.Link {
	link := types.Link{Label: label, Raw: raw}
	if hasScheme(raw) {
		link.External = true
		return link
	}

	target, fragment, _ := strings.Cut(raw, "#")
	link.Fragment = strings.TrimSpace(fragment)
	target = strings.TrimSpace(target)
	if target == "" {
		// "#anchor" stays on the current document.
		link.Route = currentRoute
		return link
	}

	target = strings.TrimSuffix(target, path.Ext(target))
	if strings.HasPrefix(target, "/") {
		link.Route = strings.TrimPrefix(path.Clean(target), "/")
		return link
	}
	link.Route = path.Clean(path.Join(path.Dir(currentRoute), target))
	return link
}

func hasScheme(raw string) bool {
	colon := strings.Index(raw, ":")
	if colon <= 0 {
		return false
	}
	for _, r := range raw[:colon] {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.' {
			continue
		}
		return false
	}
	return true
}
