// Package nav holds the single mutable navigation state of the reader and
// the pure transitions over it. Nothing here touches the terminal, the
// viewport or the corpus files; effects are returned as values and carried
// out by the caller.
package nav

import (
	"lectern/internal/types"
)

// SectionIndex is the slice of the corpus registry the state machine needs.
type SectionIndex interface {
	Lookup(id string) (types.Section, bool)
	Resolve(route, fragment string) (types.Section, bool)
	DefaultSection(route string) (types.Section, bool)
	KnownRoute(route string) bool
	DefaultRoute() string
}

// EffectKind names the side effect a transition asks its caller to perform.
// A transition never asks for both a location write and a viewport scroll:
// silent fragment updates happen inside the state, scrolls are returned.
type EffectKind int

const (
	EffectNone EffectKind = iota
	// EffectScrollToSection: smooth-scroll the current document's viewport
	// to the effect's section anchor.
	EffectScrollToSection
	// EffectScrollTop: scroll the current document's viewport to the top.
	EffectScrollTop
	// EffectNavigate: swap to a different document, then seed from the
	// effect's target location.
	EffectNavigate
)

// Effect is the instruction a transition hands back to the UI layer.
type Effect struct {
	Kind    EffectKind
	Section types.Section
	Target  types.Location
}

// State is the navigation state: one active leaf, the set of expanded
// groups, and the current location. Created once per run, never persisted.
type State struct {
	index    SectionIndex
	active   string
	expanded map[string]struct{}
	location types.Location
}

func NewState(index SectionIndex) *State {
	return &State{
		index:    index,
		expanded: map[string]struct{}{},
	}
}

func (s *State) ActiveSectionID() string  { return s.active }
func (s *State) Location() types.Location { return s.location }
func (s *State) CurrentRoute() string     { return s.location.Route }
func (s *State) CurrentFragment() string  { return s.location.Fragment }

func (s *State) ActiveSection() (types.Section, bool) {
	if s.active == "" {
		return types.Section{}, false
	}
	return s.index.Lookup(s.active)
}

// Expanded reports whether a group is expanded.
func (s *State) Expanded(groupID string) bool {
	_, ok := s.expanded[groupID]
	return ok
}

// ExpandedGroupIDs returns a copy of the expanded set.
func (s *State) ExpandedGroupIDs() map[string]struct{} {
	out := make(map[string]struct{}, len(s.expanded))
	for id := range s.expanded {
		out[id] = struct{}{}
	}
	return out
}

// Toggle flips one group's expansion. It is the only transition that ever
// collapses a group; no other group is affected.
func (s *State) Toggle(groupID string) {
	if groupID == "" {
		return
	}
	if _, ok := s.expanded[groupID]; ok {
		delete(s.expanded, groupID)
		return
	}
	s.expanded[groupID] = struct{}{}
}

// SetActive marks a section as the active leaf and silently records its
// anchor as the current fragment. The owning group is force-expanded so the
// active leaf is always reachable in the tree; nothing is collapsed.
// Returns false when the id is unknown or already active.
func (s *State) SetActive(sectionID string) bool {
	if sectionID == "" || sectionID == s.active {
		return false
	}
	section, ok := s.index.Lookup(sectionID)
	if !ok {
		return false
	}
	s.active = section.ID
	s.expanded[section.GroupID] = struct{}{}
	s.location = types.Location{Route: section.Route, Fragment: section.Anchor}
	return true
}

// ActivationFromClick is the user clicking a leaf. Same route: the state is
// updated immediately and the caller is asked to scroll, so the observer's
// later confirmation of the same id is a no-op. Different route: the state
// is untouched and the caller is asked to navigate; landing re-seeds via
// Seed. Unknown ids are absorbed.
func (s *State) ActivationFromClick(sectionID string) Effect {
	section, ok := s.index.Lookup(sectionID)
	if !ok {
		return Effect{Kind: EffectNone}
	}
	if section.Route == s.location.Route {
		s.SetActive(section.ID)
		return Effect{Kind: EffectScrollToSection, Section: section}
	}
	return Effect{
		Kind:    EffectNavigate,
		Section: section,
		Target:  types.Location{Route: section.Route, Fragment: section.Anchor},
	}
}

// FollowLink routes an already-resolved link target: same-route targets
// scroll, cross-route targets navigate, dangling targets are absorbed into
// the route's default section so a bad anchor never hard-fails.
func (s *State) FollowLink(link types.Link) Effect {
	if link.External {
		return Effect{Kind: EffectNone}
	}
	if link.Route == s.location.Route || link.Route == "" {
		if section, ok := s.index.Resolve(s.location.Route, link.Fragment); ok {
			s.SetActive(section.ID)
			return Effect{Kind: EffectScrollToSection, Section: section}
		}
		return Effect{Kind: EffectScrollTop}
	}
	return Effect{
		Kind:   EffectNavigate,
		Target: types.Location{Route: link.Route, Fragment: link.Fragment},
	}
}

// Seed applies a location on load or after a navigation landed. A known
// fragment selects its section and scrolls to it; a missing or unknown
// fragment falls back to the route's default section and the document top.
// Seeding the same location twice converges on the same state.
func (s *State) Seed(loc types.Location) Effect {
	route := loc.Route
	if route == "" || !s.index.KnownRoute(route) {
		route = s.index.DefaultRoute()
	}
	if section, ok := s.index.Resolve(route, loc.Fragment); ok {
		// Re-seeding an already-active section is a no-op state-wise but
		// still scrolls, so loading the same deep link twice settles
		// identically.
		s.SetActive(section.ID)
		return Effect{Kind: EffectScrollToSection, Section: section}
	}
	if section, ok := s.index.DefaultSection(route); ok {
		s.SetActive(section.ID)
		s.location = types.Location{Route: route, Fragment: section.Anchor}
		return Effect{Kind: EffectScrollTop}
	}
	s.active = ""
	s.location = types.Location{Route: route}
	return Effect{Kind: EffectScrollTop}
}

// ObserveActive is the passive-scroll path: the viewport observer reports a
// new focused section and the state mirrors it silently. No scroll effect is
// ever produced here; that is the one-way valve that keeps the observer from
// feeding itself.
func (s *State) ObserveActive(sectionID string) bool {
	return s.SetActive(sectionID)
}
