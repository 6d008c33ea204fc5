package site

import (
	"lectern/internal/types"
)

const defaultRouteName = "index"

// Registry is the static map of the corpus: routes, groups and sections with
// stable, globally unique section IDs. It is built once at startup and never
// mutated afterwards.
type Registry struct {
	docs       []types.Document
	groups     []types.Group
	byRoute    map[string]int
	byID       map[string]types.Section
	byAnchor   map[string]map[string]types.Section
	groupsByID map[string]types.Group
}

// NewRegistry derives groups and section identities from parsed documents.
// One group per document; a section's ID is its anchor unless another route
// already claimed it, in which case the ID is route-qualified.
func NewRegistry(docs []types.Document) *Registry {
	r := &Registry{
		docs:       docs,
		byRoute:    make(map[string]int, len(docs)),
		byID:       map[string]types.Section{},
		byAnchor:   make(map[string]map[string]types.Section, len(docs)),
		groupsByID: map[string]types.Group{},
	}
	claimed := map[string]struct{}{}
	for i := range r.docs {
		doc := &r.docs[i]
		r.byRoute[doc.Route] = i
		group := types.Group{
			ID:    "grp:" + doc.Route,
			Label: doc.Title,
			Route: doc.Route,
		}
		anchors := make(map[string]types.Section, len(doc.Sections))
		for j := range doc.Sections {
			section := &doc.Sections[j]
			section.GroupID = group.ID
			id := section.Anchor
			if _, taken := claimed[id]; taken {
				id = doc.Route + ":" + section.Anchor
			}
			claimed[id] = struct{}{}
			section.ID = id
			r.byID[id] = *section
			anchors[section.Anchor] = *section
			group.SectionIDs = append(group.SectionIDs, id)
		}
		r.byAnchor[doc.Route] = anchors
		r.groups = append(r.groups, group)
		r.groupsByID[group.ID] = group
	}
	return r
}

// Documents returns the corpus in display order.
func (r *Registry) Documents() []types.Document {
	return r.docs
}

func (r *Registry) Document(route string) (types.Document, bool) {
	idx, ok := r.byRoute[route]
	if !ok {
		return types.Document{}, false
	}
	return r.docs[idx], true
}

func (r *Registry) Groups() []types.Group {
	return r.groups
}

func (r *Registry) Group(id string) (types.Group, bool) {
	group, ok := r.groupsByID[id]
	return group, ok
}

// SectionsFor returns the ordered sections anchored in route, or nil for an
// unknown route.
func (r *Registry) SectionsFor(route string) []types.Section {
	idx, ok := r.byRoute[route]
	if !ok {
		return nil
	}
	return r.docs[idx].Sections
}

// DefaultRoute is the route a reader lands on without a deep link: "index"
// when the corpus has one, otherwise the first document.
func (r *Registry) DefaultRoute() string {
	if _, ok := r.byRoute[defaultRouteName]; ok {
		return defaultRouteName
	}
	if len(r.docs) == 0 {
		return ""
	}
	return r.docs[0].Route
}

// DefaultSection is the section a route opens on: its first section. Unknown
// routes fall back to the default route's first section; a document with no
// sections reports ok=false and the reader simply shows its top.
func (r *Registry) DefaultSection(route string) (types.Section, bool) {
	idx, ok := r.byRoute[route]
	if !ok {
		idx, ok = r.byRoute[r.DefaultRoute()]
		if !ok {
			return types.Section{}, false
		}
	}
	sections := r.docs[idx].Sections
	if len(sections) == 0 {
		return types.Section{}, false
	}
	return sections[0], true
}

// Lookup finds a section by its globally unique ID.
func (r *Registry) Lookup(id string) (types.Section, bool) {
	section, ok := r.byID[id]
	return section, ok
}

// Resolve finds the section a deep-link fragment addresses on a route. The
// fragment is matched against per-route anchors first, then against global
// IDs so route-qualified links keep working.
func (r *Registry) Resolve(route, fragment string) (types.Section, bool) {
	if fragment == "" {
		return types.Section{}, false
	}
	if anchors, ok := r.byAnchor[route]; ok {
		if section, ok := anchors[fragment]; ok {
			return section, true
		}
	}
	if section, ok := r.byID[fragment]; ok && section.Route == route {
		return section, true
	}
	return types.Section{}, false
}

// KnownRoute reports whether route exists in the corpus.
func (r *Registry) KnownRoute(route string) bool {
	_, ok := r.byRoute[route]
	return ok
}
