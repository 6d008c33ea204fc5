package app

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"lectern/internal/types"
)

type jumpItem struct {
	section  types.Section
	docTitle string
}

func (i jumpItem) Title() string { return i.section.Label }

func (i jumpItem) Description() string {
	return i.docTitle + " · " + i.section.Route + "#" + i.section.Anchor
}

func (i jumpItem) FilterValue() string {
	return i.section.Label + " " + i.docTitle
}

// JumpPicker is the filterable flat list of every section in the corpus.
// Choosing an entry goes through the same activation path as a sidebar
// click.
type JumpPicker struct {
	list list.Model
}

func NewJumpPicker(docs []types.Document) *JumpPicker {
	items := make([]list.Item, 0, len(docs)*4)
	for _, doc := range docs {
		for _, section := range doc.Sections {
			items = append(items, jumpItem{section: section, docTitle: doc.Title})
		}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Jump to section"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.Styles.Title = headerStyle
	return &JumpPicker{list: l}
}

func (p *JumpPicker) Update(msg tea.Msg) tea.Cmd {
	updated, cmd := p.list.Update(msg)
	p.list = updated
	return cmd
}

func (p *JumpPicker) View() string {
	return p.list.View()
}

func (p *JumpPicker) SetSize(width, height int) {
	p.list.SetSize(width, height)
}

func (p *JumpPicker) Filtering() bool {
	return p.list.FilterState() == list.Filtering
}

func (p *JumpPicker) ResetFilter() {
	p.list.ResetFilter()
}

func (p *JumpPicker) Selected() (types.Section, bool) {
	item, ok := p.list.SelectedItem().(jumpItem)
	if !ok {
		return types.Section{}, false
	}
	return item.section, true
}
