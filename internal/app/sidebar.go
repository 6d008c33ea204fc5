package app

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/x/ansi"

	"lectern/internal/types"
)

type navRowKind int

const (
	navRowGroup navRowKind = iota
	navRowSection
)

// navRow is one visible line of the navigation tree: either a collapsible
// group header or a section leaf under an expanded group.
type navRow struct {
	kind        navRowKind
	group       types.Group
	section     types.Section
	collapsible bool
	expanded    bool
}

func (r navRow) key() string {
	if r.kind == navRowGroup {
		return r.group.ID
	}
	return "sec:" + r.section.ID
}

func (r navRow) isSection() bool {
	return r.kind == navRowSection
}

// expansionResolver answers whether a group is currently expanded.
type expansionResolver interface {
	Expanded(groupID string) bool
}

// sectionLookup resolves section IDs to sections.
type sectionLookup interface {
	Lookup(id string) (types.Section, bool)
}

// buildNavRows flattens groups and their sections into the visible row list.
// Collapsed groups contribute only their header row.
func buildNavRows(groups []types.Group, sections sectionLookup, expansion expansionResolver) []navRow {
	rows := make([]navRow, 0, len(groups)*4)
	for _, group := range groups {
		expanded := expansion.Expanded(group.ID)
		rows = append(rows, navRow{
			kind:        navRowGroup,
			group:       group,
			collapsible: len(group.SectionIDs) > 0,
			expanded:    expanded,
		})
		if !expanded {
			continue
		}
		for _, id := range group.SectionIDs {
			section, ok := sections.Lookup(id)
			if !ok {
				continue
			}
			rows = append(rows, navRow{kind: navRowSection, section: section})
		}
	}
	return rows
}

// renderNavRow draws one tree line. The active leaf and its group carry their
// own styles; the cursor row wins over both.
func renderNavRow(row navRow, width int, selected bool, activeSectionID, activeGroupID string) string {
	switch row.kind {
	case navRowGroup:
		prefix := "  "
		if row.collapsible {
			if row.expanded {
				prefix = "▾ "
			} else {
				prefix = "▸ "
			}
		}
		label := prefix + row.group.Label
		if !row.expanded && len(row.group.SectionIDs) > 0 {
			label += " (" + strconv.Itoa(len(row.group.SectionIDs)) + ")"
		}
		label = truncateToWidth(label, width)
		style := groupStyle
		if row.group.ID == activeGroupID {
			style = groupActiveStyle
		}
		if selected {
			style = selectedStyle
		}
		return style.Render(label)
	case navRowSection:
		indent := "  "
		if row.section.Level > 2 {
			indent = "    "
		}
		marker := " "
		if row.section.ID == activeSectionID {
			marker = "›"
		}
		line := fmt.Sprintf("%s%s %s", indent, marker, row.section.Label)
		line = truncateToWidth(line, width)
		style := sectionStyle
		if row.section.ID == activeSectionID {
			style = sectionActiveStyle
		}
		if selected {
			style = selectedStyle
		}
		return style.Render(line)
	default:
		return ""
	}
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	if ansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return ansi.Cut(text, 0, width-1) + "…"
}
