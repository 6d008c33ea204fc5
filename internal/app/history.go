package app

import "strings"

const defaultSectionHistoryLimit = 256

// SectionHistory is a bounded back/forward trail of visited sections.
// User-initiated activations Visit; passive observer updates sync the
// current entry in place, so scrolling through a document does not flood the
// trail with every heading passed.
type SectionHistory interface {
	Visit(id string)
	SyncCurrent(id string)
	Back(valid func(string) bool) (string, bool)
	Forward(valid func(string) bool) (string, bool)
}

type boundedSectionHistory struct {
	entries []string
	index   int
	limit   int
}

func NewSectionHistory(limit int) SectionHistory {
	if limit <= 0 {
		limit = defaultSectionHistoryLimit
	}
	return &boundedSectionHistory{
		entries: nil,
		index:   -1,
		limit:   limit,
	}
}

func (h *boundedSectionHistory) Visit(id string) {
	id = strings.TrimSpace(id)
	if id == "" || h == nil {
		return
	}
	if h.index >= 0 && h.index < len(h.entries) && h.entries[h.index] == id {
		return
	}
	if h.index >= 0 && h.index+1 < len(h.entries) {
		h.entries = append([]string(nil), h.entries[:h.index+1]...)
	}
	h.entries = append(h.entries, id)
	if len(h.entries) > h.limit {
		trim := len(h.entries) - h.limit
		h.entries = append([]string(nil), h.entries[trim:]...)
		h.index -= trim
		if h.index < 0 {
			h.index = 0
		}
	}
	h.index = len(h.entries) - 1
}

func (h *boundedSectionHistory) SyncCurrent(id string) {
	id = strings.TrimSpace(id)
	if id == "" || h == nil {
		return
	}
	if h.index < 0 || h.index >= len(h.entries) {
		h.entries = []string{id}
		h.index = 0
		return
	}
	h.entries[h.index] = id
}

func (h *boundedSectionHistory) Back(valid func(string) bool) (string, bool) {
	if h == nil || h.index <= 0 {
		return "", false
	}
	if valid == nil {
		valid = alwaysValidHistoryID
	}
	for i := h.index - 1; i >= 0; i-- {
		id := strings.TrimSpace(h.entries[i])
		if id == "" || !valid(id) {
			continue
		}
		h.index = i
		return id, true
	}
	return "", false
}

func (h *boundedSectionHistory) Forward(valid func(string) bool) (string, bool) {
	if h == nil || h.index < 0 || h.index+1 >= len(h.entries) {
		return "", false
	}
	if valid == nil {
		valid = alwaysValidHistoryID
	}
	for i := h.index + 1; i < len(h.entries); i++ {
		id := strings.TrimSpace(h.entries[i])
		if id == "" || !valid(id) {
			continue
		}
		h.index = i
		return id, true
	}
	return "", false
}

func alwaysValidHistoryID(string) bool { return true }
