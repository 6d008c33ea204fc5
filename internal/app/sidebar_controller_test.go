package app

import (
	"fmt"
	"testing"

	"lectern/internal/types"
)

type fakeTreeData struct {
	groups   []types.Group
	sections map[string]types.Section
	expanded map[string]bool
}

func (f *fakeTreeData) Expanded(groupID string) bool { return f.expanded[groupID] }

func (f *fakeTreeData) Lookup(id string) (types.Section, bool) {
	section, ok := f.sections[id]
	return section, ok
}

func newFakeTreeData(groupCount, sectionsPer int) *fakeTreeData {
	data := &fakeTreeData{
		sections: map[string]types.Section{},
		expanded: map[string]bool{},
	}
	for g := 0; g < groupCount; g++ {
		group := types.Group{
			ID:    fmt.Sprintf("grp:g%d", g),
			Label: fmt.Sprintf("Group %d", g),
			Route: fmt.Sprintf("g%d", g),
		}
		for s := 0; s < sectionsPer; s++ {
			id := fmt.Sprintf("g%d-s%d", g, s)
			section := types.Section{
				ID:      id,
				Anchor:  id,
				Label:   fmt.Sprintf("Section %d.%d", g, s),
				GroupID: group.ID,
				Route:   group.Route,
				Level:   2,
			}
			data.sections[id] = section
			group.SectionIDs = append(group.SectionIDs, id)
		}
		data.groups = append(data.groups, group)
	}
	return data
}

func TestNavTreeCollapsedGroupsContributeHeaderOnly(t *testing.T) {
	data := newFakeTreeData(2, 3)
	controller := NewNavTreeController(data.groups, data, data)

	if got := len(controller.rows); got != 2 {
		t.Fatalf("expected 2 header rows while collapsed, got %d", got)
	}

	data.expanded["grp:g0"] = true
	controller.Rebuild()
	if got := len(controller.rows); got != 5 {
		t.Fatalf("expected 5 rows with one group expanded, got %d", got)
	}
}

func TestNavTreeRebuildKeepsSelection(t *testing.T) {
	data := newFakeTreeData(2, 3)
	data.expanded["grp:g0"] = true
	data.expanded["grp:g1"] = true
	controller := NewNavTreeController(data.groups, data, data)
	controller.SetSize(30, 10)

	// Move onto the second group's header (row 4).
	for i := 0; i < 4; i++ {
		controller.CursorDown()
	}
	row, ok := controller.SelectedRow()
	if !ok || row.isSection() || row.group.ID != "grp:g1" {
		t.Fatalf("expected cursor on grp:g1 header, got %+v ok=%v", row, ok)
	}

	// Collapsing the first group must not move the selection off its row.
	data.expanded["grp:g0"] = false
	controller.Rebuild()
	row, ok = controller.SelectedRow()
	if !ok || row.isSection() || row.group.ID != "grp:g1" {
		t.Fatalf("expected selection preserved across rebuild, got %+v ok=%v", row, ok)
	}
}

func TestNavTreeEnsureVisibleScrollsMinimally(t *testing.T) {
	data := newFakeTreeData(1, 20)
	data.expanded["grp:g0"] = true
	controller := NewNavTreeController(data.groups, data, data)
	controller.SetSize(30, 6) // 5 visible rows under the header

	// Below the window: land on the bottom edge.
	controller.ensureVisible(10)
	if controller.windowOffset != 6 {
		t.Fatalf("expected window offset 6, got %d", controller.windowOffset)
	}
	// Already visible: nothing moves.
	controller.ensureVisible(8)
	if controller.windowOffset != 6 {
		t.Fatalf("expected window untouched for visible row, got %d", controller.windowOffset)
	}
	// Above the window: land on the top edge.
	controller.ensureVisible(3)
	if controller.windowOffset != 3 {
		t.Fatalf("expected window offset 3, got %d", controller.windowOffset)
	}
}

func TestNavTreeSetActiveLeafBringsRowIntoView(t *testing.T) {
	data := newFakeTreeData(1, 20)
	data.expanded["grp:g0"] = true
	controller := NewNavTreeController(data.groups, data, data)
	controller.SetSize(30, 6)

	section := data.sections["g0-s15"]
	controller.SetActiveLeaf(section)

	if controller.ActiveSectionID() != "g0-s15" {
		t.Fatalf("expected active leaf recorded, got %q", controller.ActiveSectionID())
	}
	// Row 16 (header + 15 leaves) must be inside the 5-row window.
	if idx := 16; idx < controller.windowOffset || idx >= controller.windowOffset+5 {
		t.Fatalf("expected active row in window, offset=%d", controller.windowOffset)
	}
}

func TestNavTreeRowAtMapsTerminalRows(t *testing.T) {
	data := newFakeTreeData(2, 2)
	data.expanded["grp:g0"] = true
	controller := NewNavTreeController(data.groups, data, data)
	controller.SetSize(30, 10)

	if _, ok := controller.RowAt(0); ok {
		t.Fatalf("expected header row to map to nothing")
	}
	row, ok := controller.RowAt(1)
	if !ok || row.isSection() {
		t.Fatalf("expected first tree row to be a group header, got %+v ok=%v", row, ok)
	}
	row, ok = controller.RowAt(2)
	if !ok || !row.isSection() || row.section.ID != "g0-s0" {
		t.Fatalf("expected first leaf under expanded group, got %+v ok=%v", row, ok)
	}
	if _, ok := controller.RowAt(9); ok {
		t.Fatalf("expected row past the tree to map to nothing")
	}
}

func TestNavTreeScrollMovesCursor(t *testing.T) {
	data := newFakeTreeData(1, 10)
	data.expanded["grp:g0"] = true
	controller := NewNavTreeController(data.groups, data, data)
	controller.SetSize(30, 5)

	if !controller.Scroll(3) {
		t.Fatalf("expected scroll to report movement")
	}
	if controller.cursor != 3 {
		t.Fatalf("expected cursor at 3, got %d", controller.cursor)
	}
	controller.Scroll(-2)
	if controller.cursor != 1 {
		t.Fatalf("expected cursor at 1, got %d", controller.cursor)
	}
}
