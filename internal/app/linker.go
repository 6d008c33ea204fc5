package app

import (
	"lectern/internal/types"
)

// linkRing cycles through the current document's outgoing links. Following
// one goes through the navigation state's FollowLink, which resolves the
// target via the registry's section map rather than comparing raw hrefs.
type linkRing struct {
	links []types.Link
	index int
}

func newLinkRing() *linkRing {
	return &linkRing{index: -1}
}

// set replaces the ring with a new document's links and clears the focus.
func (r *linkRing) set(links []types.Link) {
	r.links = links
	r.index = -1
}

// cycle moves the focus forward or backward, wrapping at the ends.
func (r *linkRing) cycle(delta int) (types.Link, bool) {
	if len(r.links) == 0 {
		return types.Link{}, false
	}
	if r.index < 0 {
		if delta < 0 {
			r.index = len(r.links) - 1
		} else {
			r.index = 0
		}
		return r.links[r.index], true
	}
	r.index = (r.index + delta + len(r.links)) % len(r.links)
	return r.links[r.index], true
}

func (r *linkRing) current() (types.Link, bool) {
	if r.index < 0 || r.index >= len(r.links) {
		return types.Link{}, false
	}
	return r.links[r.index], true
}

func (r *linkRing) clearFocus() {
	r.index = -1
}
