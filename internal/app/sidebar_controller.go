package app

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lectern/internal/types"
)

const (
	navTreeHeaderRows   = 1
	navTreeScrollbarGap = 1
	navTreeTitle        = "Contents"
)

// NavTreeController owns the sidebar: the flattened row list, the cursor,
// and the scroll window over an overflowing tree. The active leaf is kept in
// view with the minimal nearest-edge scroll, never re-centered, so rapid
// scroll-driven updates do not jitter.
type NavTreeController struct {
	groups    []types.Group
	sections  sectionLookup
	expansion expansionResolver

	rows         []navRow
	cursor       int
	windowOffset int
	width        int
	height       int

	activeSectionID string
	activeGroupID   string
}

func NewNavTreeController(groups []types.Group, sections sectionLookup, expansion expansionResolver) *NavTreeController {
	c := &NavTreeController{
		groups:    groups,
		sections:  sections,
		expansion: expansion,
	}
	c.rows = buildNavRows(groups, sections, expansion)
	return c
}

// Rebuild re-flattens the tree after an expansion change, keeping the cursor
// on the same row when it survives.
func (c *NavTreeController) Rebuild() {
	selectedKey := c.selectedKey()
	c.rows = buildNavRows(c.groups, c.sections, c.expansion)
	if selectedKey != "" {
		for i, row := range c.rows {
			if row.key() == selectedKey {
				c.cursor = i
				c.clampWindow()
				return
			}
		}
	}
	if c.cursor >= len(c.rows) {
		c.cursor = max(0, len(c.rows)-1)
	}
	c.clampWindow()
}

func (c *NavTreeController) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.clampWindow()
}

func (c *NavTreeController) CursorUp() {
	if c.cursor > 0 {
		c.cursor--
	}
	c.ensureVisible(c.cursor)
}

func (c *NavTreeController) CursorDown() {
	if c.cursor < len(c.rows)-1 {
		c.cursor++
	}
	c.ensureVisible(c.cursor)
}

func (c *NavTreeController) Scroll(lines int) bool {
	if lines == 0 || len(c.rows) == 0 {
		return false
	}
	steps := lines
	if steps < 0 {
		steps = -steps
	}
	for i := 0; i < steps; i++ {
		if lines < 0 {
			c.CursorUp()
		} else {
			c.CursorDown()
		}
	}
	return true
}

// SelectedRow returns the row under the cursor.
func (c *NavTreeController) SelectedRow() (navRow, bool) {
	if c.cursor < 0 || c.cursor >= len(c.rows) {
		return navRow{}, false
	}
	return c.rows[c.cursor], true
}

// RowAt maps a terminal row (relative to the sidebar top) to a tree row.
func (c *NavTreeController) RowAt(y int) (navRow, bool) {
	idx := c.windowOffset + y - navTreeHeaderRows
	if y < navTreeHeaderRows || idx < 0 || idx >= len(c.rows) {
		return navRow{}, false
	}
	return c.rows[idx], true
}

// SelectByRow moves the cursor to the tree row under a terminal row.
func (c *NavTreeController) SelectByRow(y int) bool {
	idx := c.windowOffset + y - navTreeHeaderRows
	if y < navTreeHeaderRows || idx < 0 || idx >= len(c.rows) {
		return false
	}
	c.cursor = idx
	return true
}

// SetActiveLeaf highlights a section leaf and brings it into view. The
// expansion state is read from the resolver, so callers must have already
// force-expanded the owning group (the state container does).
func (c *NavTreeController) SetActiveLeaf(section types.Section) {
	c.activeSectionID = section.ID
	c.activeGroupID = section.GroupID
	c.Rebuild()
	for i, row := range c.rows {
		if row.isSection() && row.section.ID == section.ID {
			c.ensureVisible(i)
			return
		}
	}
}

func (c *NavTreeController) ActiveSectionID() string {
	return c.activeSectionID
}

// CursorToActive moves the cursor onto the active leaf, if visible.
func (c *NavTreeController) CursorToActive() {
	for i, row := range c.rows {
		if row.isSection() && row.section.ID == c.activeSectionID {
			c.cursor = i
			c.ensureVisible(i)
			return
		}
	}
}

func (c *NavTreeController) selectedKey() string {
	row, ok := c.SelectedRow()
	if !ok {
		return ""
	}
	return row.key()
}

func (c *NavTreeController) visibleRows() int {
	visible := c.height - navTreeHeaderRows
	if visible < 1 {
		visible = 1
	}
	return visible
}

// ensureVisible scrolls the window by the minimal amount that puts index
// fully inside it: nothing when already visible, nearest edge otherwise.
func (c *NavTreeController) ensureVisible(index int) {
	if index < 0 || index >= len(c.rows) {
		return
	}
	visible := c.visibleRows()
	if index < c.windowOffset {
		c.windowOffset = index
	} else if index >= c.windowOffset+visible {
		c.windowOffset = index - visible + 1
	}
}

func (c *NavTreeController) clampWindow() {
	maxOffset := len(c.rows) - c.visibleRows()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.windowOffset > maxOffset {
		c.windowOffset = maxOffset
	}
	if c.windowOffset < 0 {
		c.windowOffset = 0
	}
}

func (c *NavTreeController) View() string {
	if c.width <= 0 || c.height <= 0 {
		return ""
	}
	rowWidth := c.width
	bar := c.scrollbarView()
	if bar != "" {
		rowWidth -= navTreeScrollbarGap
	}
	lines := make([]string, 0, c.height)
	lines = append(lines, headerStyle.Render(truncateToWidth(navTreeTitle, rowWidth)))
	visible := c.visibleRows()
	for i := 0; i < visible; i++ {
		idx := c.windowOffset + i
		if idx >= len(c.rows) {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, renderNavRow(c.rows[idx], rowWidth, idx == c.cursor, c.activeSectionID, c.activeGroupID))
	}
	view := strings.Join(lines, "\n")
	if bar == "" {
		return view
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(rowWidth).Render(view), bar)
}

func (c *NavTreeController) scrollbarView() string {
	visible := c.visibleRows()
	total := len(c.rows)
	if total <= visible {
		return ""
	}
	trackHeight := visible
	thumbHeight := int(math.Round(float64(visible) / float64(total) * float64(trackHeight)))
	if thumbHeight < 1 {
		thumbHeight = 1
	}
	if thumbHeight > trackHeight {
		thumbHeight = trackHeight
	}
	maxStart := trackHeight - thumbHeight
	denom := total - visible
	startPos := 0
	if denom > 0 && maxStart > 0 {
		startPos = int(math.Round(float64(c.windowOffset) / float64(denom) * float64(maxStart)))
	}
	if startPos < 0 {
		startPos = 0
	}
	if startPos > maxStart {
		startPos = maxStart
	}
	lines := make([]string, 0, c.height)
	lines = append(lines, " ")
	for i := 0; i < trackHeight; i++ {
		if i >= startPos && i < startPos+thumbHeight {
			lines = append(lines, scrollbarThumbStyle.Render("┃"))
		} else {
			lines = append(lines, scrollbarTrackStyle.Render("│"))
		}
	}
	return strings.Join(lines, "\n")
}
