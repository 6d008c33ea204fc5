package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lectern/internal/config"
	"lectern/internal/logging"
	"lectern/internal/nav"
	"lectern/internal/site"
	"lectern/internal/types"
)

type uiMode int

const (
	uiModeNormal uiMode = iota
	uiModeJump
)

const (
	minNavWidth  = 24
	maxNavWidth  = 40
	wheelStep    = 3
	historyLimit = 256
)

// Model is the root TUI model. It owns the registry, the navigation state,
// and the widgets that mirror it: the contents tree, the document viewport,
// and the location surface.
type Model struct {
	registry *site.Registry
	cfg      config.Config
	log      logging.Logger

	state    *nav.State
	tree     *NavTreeController
	observer *Observer
	viewport viewport.Model
	jump     *JumpPicker
	links    *linkRing
	history  SectionHistory

	currentDoc  types.Document
	hasDoc      bool
	anchorLines map[string]int

	anim    *scrollAnimation
	animSeq int

	initialTarget types.Location
	ready         bool

	mode          uiMode
	sidebarHidden bool
	width         int
	height        int
	status        string
}

func NewModel(registry *site.Registry, cfg config.Config, log logging.Logger, target types.Location) *Model {
	state := nav.NewState(registry)
	m := &Model{
		registry:      registry,
		cfg:           cfg,
		log:           log,
		state:         state,
		observer:      NewObserver(cfg.FocusTopOffset(), cfg.FocusBandFraction()),
		viewport:      viewport.New(0, 0),
		jump:          NewJumpPicker(registry.Documents()),
		links:         newLinkRing(),
		history:       NewSectionHistory(historyLimit),
		anchorLines:   map[string]int{},
		initialTarget: target,
	}
	m.tree = NewNavTreeController(registry.Groups(), registry, state)
	configureMarkdownStyle(cfg.MarkdownStyle())
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleResize(msg)
	case observeEvalMsg:
		return m, m.handleObserveEval()
	case scrollFrameMsg:
		return m, m.handleScrollFrame(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) tea.Cmd {
	m.width = msg.Width
	m.height = msg.Height
	m.applyLayout()
	if !m.ready {
		m.ready = true
		return m.navigateTo(m.initialTarget, true)
	}
	if m.hasDoc {
		// Wrapping changed, so every anchor offset moved. Re-render and
		// re-pin the viewport on the active section.
		m.renderDocument()
		if id := m.state.ActiveSectionID(); id != "" {
			m.viewport.SetYOffset(m.scrollTargetFor(id))
		}
		return m.requestObserve()
	}
	return nil
}

func (m *Model) applyLayout() {
	contentHeight := m.height - 1
	if contentHeight < 0 {
		contentHeight = 0
	}
	navWidth := m.navWidth()
	docWidth := m.width - navWidth
	if navWidth > 0 {
		docWidth -= 1 // divider column
	}
	if docWidth < 0 {
		docWidth = 0
	}
	m.tree.SetSize(navWidth, contentHeight)
	m.viewport.Width = docWidth
	docHeight := contentHeight - 1 // document title row
	if docHeight < 0 {
		docHeight = 0
	}
	m.viewport.Height = docHeight
	m.jump.SetSize(docWidth, contentHeight)
}

func (m *Model) navWidth() int {
	if m.sidebarHidden || m.width == 0 {
		return 0
	}
	w := m.width / 3
	if w < minNavWidth {
		w = minNavWidth
	}
	if w > maxNavWidth {
		w = maxNavWidth
	}
	if w > m.width {
		w = m.width
	}
	return w
}

// renderDocument rewraps the current document for the viewport width and
// rebinds the heading anchors to their rendered line offsets.
func (m *Model) renderDocument() {
	rendered := renderMarkdown(m.currentDoc.Markdown, m.viewport.Width)
	m.viewport.SetContent(rendered)
	anchors := computeAnchors(m.currentDoc.Sections, strippedLines(rendered))
	m.anchorLines = make(map[string]int, len(anchors))
	for _, anchor := range anchors {
		m.anchorLines[anchor.ID] = anchor.Offset
	}
	m.observer.SetAnchors(anchors)
}

func (m *Model) scrollTargetFor(id string) int {
	line, ok := m.anchorLines[id]
	if !ok {
		return 0
	}
	target := line - m.cfg.FocusTopOffset()
	if target < 0 {
		target = 0
	}
	maxOffset := m.viewport.TotalLineCount() - m.viewport.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if target > maxOffset {
		target = maxOffset
	}
	return target
}

func (m *Model) startSmoothScroll(target int) tea.Cmd {
	if target == m.viewport.YOffset {
		return m.requestObserve()
	}
	m.animSeq++
	m.anim = &scrollAnimation{
		from:     m.viewport.YOffset,
		to:       target,
		start:    time.Now(),
		duration: m.cfg.ScrollDuration(),
		seq:      m.animSeq,
	}
	return scrollFrameCmd(m.animSeq)
}

// cancelAnimation bumps the sequence so in-flight frames for the old
// animation are dropped when they arrive.
func (m *Model) cancelAnimation() {
	m.animSeq++
	m.anim = nil
}

func (m *Model) handleScrollFrame(msg scrollFrameMsg) tea.Cmd {
	if m.anim == nil || msg.seq != m.anim.seq {
		return nil
	}
	offset, done := m.anim.offsetAt(time.Now())
	m.viewport.SetYOffset(offset)
	if done {
		m.anim = nil
		return m.requestObserve()
	}
	return scrollFrameCmd(msg.seq)
}

// applyEffect turns a navigation transition's effect into viewport and
// surface updates. The state itself already changed; this only mirrors.
func (m *Model) applyEffect(effect nav.Effect, smooth bool) tea.Cmd {
	switch effect.Kind {
	case nav.EffectScrollToSection:
		m.observer.NoteActive(effect.Section.ID)
		m.tree.SetActiveLeaf(effect.Section)
		m.history.Visit(effect.Section.ID)
		target := m.scrollTargetFor(effect.Section.ID)
		if smooth {
			return tea.Batch(m.syncLocationCmd(), m.startSmoothScroll(target))
		}
		m.viewport.SetYOffset(target)
		return tea.Batch(m.syncLocationCmd(), m.requestObserve())
	case nav.EffectScrollTop:
		if smooth {
			return m.startSmoothScroll(0)
		}
		m.viewport.GotoTop()
		return m.requestObserve()
	case nav.EffectNavigate:
		return m.navigateTo(effect.Target, true)
	}
	return nil
}

func (m *Model) activateSection(id string) tea.Cmd {
	return m.applyEffect(m.state.ActivationFromClick(id), true)
}

func (m *Model) followLink(link types.Link) tea.Cmd {
	if link.External {
		m.status = "external: " + link.Raw
		return nil
	}
	return m.applyEffect(m.state.FollowLink(link), true)
}

func (m *Model) activateRow(row navRow) tea.Cmd {
	if row.isSection() {
		return m.activateSection(row.section.ID)
	}
	m.state.Toggle(row.group.ID)
	m.tree.Rebuild()
	return nil
}

// historyGo walks the visit trail. Entries whose section vanished from the
// registry are skipped by the trail itself.
func (m *Model) historyGo(delta int) tea.Cmd {
	valid := func(id string) bool {
		_, ok := m.registry.Lookup(id)
		return ok
	}
	var id string
	var ok bool
	if delta < 0 {
		id, ok = m.history.Back(valid)
	} else {
		id, ok = m.history.Forward(valid)
	}
	if !ok {
		return nil
	}
	section, ok := m.registry.Lookup(id)
	if !ok {
		return nil
	}
	if section.Route != m.state.CurrentRoute() {
		return m.navigateTo(types.Location{Route: section.Route, Fragment: section.Anchor}, false)
	}
	if !m.state.SetActive(id) {
		return nil
	}
	m.observer.NoteActive(id)
	m.tree.SetActiveLeaf(section)
	return tea.Batch(m.syncLocationCmd(), m.startSmoothScroll(m.scrollTargetFor(id)))
}

func (m *Model) adjacentDocument(delta int) tea.Cmd {
	docs := m.registry.Documents()
	if len(docs) == 0 || !m.hasDoc {
		return nil
	}
	index := -1
	for i, doc := range docs {
		if doc.Route == m.currentDoc.Route {
			index = i
			break
		}
	}
	next := index + delta
	if index < 0 || next < 0 || next >= len(docs) {
		return nil
	}
	return m.navigateTo(types.Location{Route: docs[next].Route}, true)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.mode == uiModeJump {
		return m.handleJumpKey(msg)
	}
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "j", "down":
		return m.manualScroll(func() { m.viewport.ScrollDown(1) })
	case "k", "up":
		return m.manualScroll(func() { m.viewport.ScrollUp(1) })
	case "pgdown", "f", " ":
		return m.manualScroll(func() { m.viewport.PageDown() })
	case "pgup", "b":
		return m.manualScroll(func() { m.viewport.PageUp() })
	case "d":
		return m.manualScroll(func() { m.viewport.HalfPageDown() })
	case "u":
		return m.manualScroll(func() { m.viewport.HalfPageUp() })
	case "g", "home":
		return m.manualScroll(func() { m.viewport.GotoTop() })
	case "G", "end":
		return m.manualScroll(func() { m.viewport.GotoBottom() })
	case "n", "ctrl+n":
		m.tree.CursorDown()
	case "p", "ctrl+p":
		m.tree.CursorUp()
	case "enter":
		if row, ok := m.tree.SelectedRow(); ok {
			return m.activateRow(row)
		}
	case "h", "left":
		if row, ok := m.tree.SelectedRow(); ok && !row.isSection() && m.state.Expanded(row.group.ID) {
			m.state.Toggle(row.group.ID)
			m.tree.Rebuild()
		}
	case "l", "right":
		if row, ok := m.tree.SelectedRow(); ok && !row.isSection() && !m.state.Expanded(row.group.ID) {
			m.state.Toggle(row.group.ID)
			m.tree.Rebuild()
		}
	case "tab":
		m.cycleLink(1)
	case "shift+tab":
		m.cycleLink(-1)
	case "o":
		if link, ok := m.links.current(); ok {
			return m.followLink(link)
		}
	case "/":
		m.mode = uiModeJump
		m.jump.ResetFilter()
	case "y":
		m.copyDeepLink()
		return m.syncLocationCmd()
	case "[":
		return m.adjacentDocument(-1)
	case "]":
		return m.adjacentDocument(1)
	case "alt+left":
		return m.historyGo(-1)
	case "alt+right":
		return m.historyGo(1)
	case "t":
		m.sidebarHidden = !m.sidebarHidden
		m.applyLayout()
		if m.hasDoc {
			m.renderDocument()
			if id := m.state.ActiveSectionID(); id != "" {
				m.viewport.SetYOffset(m.scrollTargetFor(id))
			}
			return m.requestObserve()
		}
	}
	return nil
}

// manualScroll wraps a direct viewport move: the user takes over, so any
// smooth scroll in flight is abandoned and the focus band re-evaluated.
func (m *Model) manualScroll(move func()) tea.Cmd {
	m.cancelAnimation()
	m.status = ""
	move()
	return m.requestObserve()
}

func (m *Model) cycleLink(delta int) {
	if _, ok := m.links.cycle(delta); !ok {
		m.status = "no links in document"
		return
	}
	m.status = ""
}

func linkSummary(link types.Link) string {
	label := link.Label
	if label == "" {
		label = link.Raw
	}
	if link.External {
		return label + " (" + link.Raw + ")"
	}
	loc := types.Location{Route: link.Route, Fragment: link.Fragment}
	return label + " → " + loc.String()
}

func (m *Model) handleJumpKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		if !m.jump.Filtering() {
			m.mode = uiModeNormal
			return nil
		}
	case "enter":
		if !m.jump.Filtering() {
			m.mode = uiModeNormal
			if section, ok := m.jump.Selected(); ok {
				if section.Route == m.state.CurrentRoute() {
					return m.activateSection(section.ID)
				}
				return m.navigateTo(types.Location{Route: section.Route, Fragment: section.Anchor}, true)
			}
			return nil
		}
	}
	return m.jump.Update(msg)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	navWidth := m.navWidth()
	overSidebar := navWidth > 0 && msg.X < navWidth
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		if overSidebar {
			m.tree.Scroll(-wheelStep)
			return nil
		}
		return m.manualScroll(func() { m.viewport.ScrollUp(wheelStep) })
	case msg.Button == tea.MouseButtonWheelDown:
		if overSidebar {
			m.tree.Scroll(wheelStep)
			return nil
		}
		return m.manualScroll(func() { m.viewport.ScrollDown(wheelStep) })
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !overSidebar || m.mode != uiModeNormal {
			return nil
		}
		row, ok := m.tree.RowAt(msg.Y)
		if !ok {
			return nil
		}
		m.tree.SelectByRow(msg.Y)
		return m.activateRow(row)
	}
	return nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	right := m.rightPane()
	var body string
	if navWidth := m.navWidth(); navWidth > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.tree.View(), m.dividerColumn(), right)
	} else {
		body = right
	}
	return body + "\n" + m.statusLine()
}

func (m *Model) rightPane() string {
	title := "lectern"
	if m.hasDoc {
		title = m.currentDoc.Title
	}
	header := headerStyle.Render(truncateToWidth(title, m.viewport.Width))
	if m.mode == uiModeJump {
		return m.jump.View()
	}
	return header + "\n" + m.viewport.View()
}

func (m *Model) dividerColumn() string {
	rows := m.height - 1
	if rows < 1 {
		rows = 1
	}
	column := make([]string, rows)
	for i := range column {
		column[i] = dividerStyle.Render("│")
	}
	return strings.Join(column, "\n")
}

func (m *Model) statusLine() string {
	link, linkFocused := m.links.current()
	left := helpStyle.Render(helpLine(m.mode, linkFocused))
	right := ""
	switch {
	case m.status != "":
		right = statusStyle.Render(m.status)
	case linkFocused:
		right = linkFocusStyle.Render(linkSummary(link))
	default:
		if loc := m.state.Location(); !loc.IsZero() {
			right = locationStyle.Render(loc.String())
		}
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return truncateToWidth(left+" "+right, m.width)
	}
	return left + strings.Repeat(" ", gap) + right
}
