package app

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"lectern/internal/logging"
	"lectern/internal/nav"
	"lectern/internal/types"
)

// The bridge between the navigation state and the address surface. Silent
// writes (observer-driven) only ever touch the location and its mirrors,
// the window title and status line, and never scroll; seeding (load or
// landing after navigation) is the one path that turns a location into a
// scroll.

type observeEvalMsg struct{}

// requestObserve schedules a coalesced focus-band evaluation on the event
// loop. Scroll mutations call this instead of evaluating inline.
func (m *Model) requestObserve() tea.Cmd {
	if !m.observer.RequestEvaluation() {
		return nil
	}
	return func() tea.Msg { return observeEvalMsg{} }
}

// handleObserveEval runs the deferred evaluation against the settled scroll
// position.
func (m *Model) handleObserveEval() tea.Cmd {
	id, changed := m.observer.Evaluate(m.viewport.YOffset, m.viewport.Height)
	if !changed {
		return nil
	}
	return m.applyObservedActive(id)
}

// applyObservedActive is the passive path: mirror a focus change into state,
// sidebar and location surface. No viewport scroll happens here; that is
// the one-way valve that keeps silent updates from feeding back into the
// observer.
func (m *Model) applyObservedActive(id string) tea.Cmd {
	if !m.state.ObserveActive(id) {
		return nil
	}
	if section, ok := m.state.ActiveSection(); ok {
		m.tree.SetActiveLeaf(section)
	}
	m.history.SyncCurrent(id)
	m.log.Debug("section focus", logging.F("section", id))
	return m.syncLocationCmd()
}

// syncLocationCmd mirrors the current location outward.
func (m *Model) syncLocationCmd() tea.Cmd {
	loc := m.state.Location()
	if loc.IsZero() {
		return nil
	}
	return tea.SetWindowTitle("lectern · " + loc.String())
}

// copyDeepLink puts the current location on the clipboard, with an OSC 52
// write for terminals where the system clipboard is out of reach.
func (m *Model) copyDeepLink() {
	loc := m.state.Location()
	if loc.IsZero() {
		return
	}
	link := loc.String()
	termenv.Copy(link)
	if err := clipboard.WriteAll(link); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "copied " + link
}

// navigateTo performs a cross-document transition: cancel any in-flight
// scroll, detach the old document's anchors before the new ones attach,
// swap content, then seed from the target location.
func (m *Model) navigateTo(target types.Location, recordVisit bool) tea.Cmd {
	route := target.Route
	if route == "" || !m.registry.KnownRoute(route) {
		route = m.registry.DefaultRoute()
		target = types.Location{Route: route}
	}
	doc, ok := m.registry.Document(route)
	if !ok {
		return nil
	}

	m.cancelAnimation()
	m.observer.Reset()
	m.status = ""

	m.currentDoc = doc
	m.hasDoc = true
	m.links.set(doc.Links)
	m.renderDocument()

	effect := m.state.Seed(target)
	switch effect.Kind {
	case nav.EffectScrollToSection:
		m.viewport.SetYOffset(m.scrollTargetFor(effect.Section.ID))
	default:
		m.viewport.GotoTop()
	}
	m.observer.NoteActive(m.state.ActiveSectionID())
	if section, ok := m.state.ActiveSection(); ok {
		m.tree.SetActiveLeaf(section)
		m.tree.CursorToActive()
		if recordVisit {
			m.history.Visit(section.ID)
		}
	}
	m.log.Info("navigate",
		logging.F("route", route),
		logging.F("fragment", m.state.CurrentFragment()))
	return tea.Batch(m.syncLocationCmd(), m.requestObserve())
}
