package types

import "strings"

// Location is the address surface of the reader: the current route plus the
// fragment of the section in focus. It is the only state that looks
// persistent, and it is fully reconstructible from a deep link.
type Location struct {
	Route    string `json:"route"`
	Fragment string `json:"fragment"`
}

// String renders the location as a deep link, "route#fragment" or just
// "route" when no fragment is set.
func (l Location) String() string {
	if l.Fragment == "" {
		return l.Route
	}
	return l.Route + "#" + l.Fragment
}

func (l Location) IsZero() bool {
	return l.Route == "" && l.Fragment == ""
}

// ParseLocation splits a deep link into route and fragment. Either side may
// be empty: "#fragment" addresses a section on the current route, "route"
// addresses a document top.
func ParseLocation(raw string) Location {
	raw = strings.TrimSpace(raw)
	route, fragment, found := strings.Cut(raw, "#")
	loc := Location{Route: strings.TrimSpace(route)}
	if found {
		loc.Fragment = strings.TrimSpace(fragment)
	}
	return loc
}
