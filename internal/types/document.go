package types

// Section is a labeled anchor inside a document. Anchor is the fragment used
// in deep links and is unique within its route; ID is unique across the whole
// corpus (route-qualified when two documents share an anchor).
type Section struct {
	ID      string `json:"id"`
	Anchor  string `json:"anchor"`
	Label   string `json:"label"`
	GroupID string `json:"group_id"`
	Route   string `json:"route"`
	Level   int    `json:"level"`
}

// Group is one collapsible block of the navigation tree. Groups partition the
// section set: every section belongs to exactly one group.
type Group struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Route      string   `json:"route"`
	SectionIDs []string `json:"section_ids"`
}

// Link is an outgoing reference found in a document body. Route and Fragment
// are resolved targets, not raw hrefs; External marks targets outside the
// corpus (http URLs and the like) that the linker leaves alone.
type Link struct {
	Label    string `json:"label"`
	Route    string `json:"route"`
	Fragment string `json:"fragment"`
	Raw      string `json:"raw"`
	External bool   `json:"external"`
}

// Document is one route of the corpus.
type Document struct {
	Route    string    `json:"route"`
	Title    string    `json:"title"`
	Path     string    `json:"path"`
	Markdown string    `json:"-"`
	Sections []Section `json:"sections"`
	Links    []Link    `json:"links"`
}
