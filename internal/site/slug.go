package site

import (
	"strconv"
	"strings"
	"unicode"
)

// Slugify converts a heading label into its anchor form: lowercased, spaces
// collapsed to single dashes, everything that is not a letter, digit or dash
// dropped. Mirrors the anchor scheme most markdown hosts use, so anchors in
// hand-written cross-references keep working.
func Slugify(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// anchorSet hands out per-document anchors, suffixing duplicates the way
// markdown hosts do ("setup", "setup-1", "setup-2").
type anchorSet struct {
	seen map[string]int
}

func newAnchorSet() *anchorSet {
	return &anchorSet{seen: map[string]int{}}
}

func (s *anchorSet) claim(label string) string {
	base := Slugify(label)
	if base == "" {
		base = "section"
	}
	n, taken := s.seen[base]
	s.seen[base] = n + 1
	if !taken {
		return base
	}
	for {
		candidate := base + "-" + strconv.Itoa(n)
		if _, ok := s.seen[candidate]; !ok {
			s.seen[candidate] = 1
			return candidate
		}
		n++
	}
}
