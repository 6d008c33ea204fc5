package app

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"

	"lectern/internal/types"
)

// computeAnchors locates each section heading in the rendered document and
// pairs the section ID with the line it landed on. Labels are matched in
// order against the ANSI-stripped render, first verbatim then loosely, so
// styled or wrapped headings still anchor; a heading the renderer mangled
// beyond recognition is skipped rather than guessed.
func computeAnchors(sections []types.Section, renderedLines []string) []Anchor {
	if len(sections) == 0 || len(renderedLines) == 0 {
		return nil
	}
	anchors := make([]Anchor, 0, len(sections))
	start := 0
	for _, section := range sections {
		needle := strings.ToLower(strings.TrimSpace(section.Label))
		if needle == "" {
			continue
		}
		found := -1
		for i := start; i < len(renderedLines); i++ {
			if strings.ToLower(strings.TrimSpace(renderedLines[i])) == needle {
				found = i
				break
			}
		}
		if found < 0 {
			for i := start; i < len(renderedLines); i++ {
				if strings.Contains(strings.ToLower(renderedLines[i]), needle) {
					found = i
					break
				}
			}
		}
		if found < 0 {
			continue
		}
		anchors = append(anchors, Anchor{ID: section.ID, Offset: found})
		start = found + 1
	}
	return anchors
}

func strippedLines(rendered string) []string {
	if rendered == "" {
		return nil
	}
	return strings.Split(xansi.Strip(rendered), "\n")
}
