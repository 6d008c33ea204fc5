package app

// Anchor is one observable point in the rendered document: a section ID and
// the line offset its heading landed on after rendering.
type Anchor struct {
	ID     string
	Offset int
}

// Observer decides which section occupies the focus band of the viewport.
// It is fed absolute line offsets and evaluated from coalesced messages on
// the event loop, never synchronously inside a scroll mutation, so rapid
// scrolling collapses into one evaluation per settled frame.
type Observer struct {
	anchors      []Anchor
	topOffset    int
	bandFraction float64
	active       string
	pending      bool
}

func NewObserver(topOffset int, bandFraction float64) *Observer {
	if topOffset < 0 {
		topOffset = 0
	}
	if bandFraction <= 0 || bandFraction > 1 {
		bandFraction = 0.45
	}
	return &Observer{topOffset: topOffset, bandFraction: bandFraction}
}

// SetAnchors replaces the observed anchor set wholesale. Called when a
// document's render settles; the old anchors are gone before the new ones
// attach, so a swap can never leave a stale anchor observed.
func (o *Observer) SetAnchors(anchors []Anchor) {
	o.anchors = anchors
}

// Reset detaches all anchors and forgets the active occupant. Used on
// document swap, before the new document registers; the seeding path decides
// the next active section.
func (o *Observer) Reset() {
	o.anchors = nil
	o.active = ""
	o.pending = false
}

// NoteActive syncs the observer with an activation that happened outside
// passive scrolling (a click or a seed), so the follow-up evaluation of the
// same section is recognized as a confirmation, not a change.
func (o *Observer) NoteActive(id string) {
	o.active = id
}

// RequestEvaluation marks an evaluation as wanted and reports whether the
// caller should schedule one. Multiple requests before the evaluation runs
// coalesce into a single pass.
func (o *Observer) RequestEvaluation() bool {
	if o.pending {
		return false
	}
	o.pending = true
	return true
}

// Evaluate inspects the focus band at the given scroll position and returns
// the occupant's section ID plus whether it changed. With several anchors in
// band, the topmost wins. With none, the previous occupant is retained
// rather than cleared, so the highlight never flickers off mid-document.
func (o *Observer) Evaluate(yOffset, viewportHeight int) (string, bool) {
	o.pending = false
	if len(o.anchors) == 0 || viewportHeight <= 0 {
		return o.active, false
	}
	bandTop, bandBottom := o.band(yOffset, viewportHeight)
	best := ""
	bestOffset := 0
	for _, anchor := range o.anchors {
		if anchor.Offset < bandTop || anchor.Offset >= bandBottom {
			continue
		}
		if best == "" || anchor.Offset < bestOffset {
			best = anchor.ID
			bestOffset = anchor.Offset
		}
	}
	if best == "" {
		return o.active, false
	}
	if best == o.active {
		return o.active, false
	}
	o.active = best
	return best, true
}

// band returns the focus band's [top, bottom) in absolute line offsets: it
// starts topOffset lines under the viewport top and spans bandFraction of
// the height, deliberately excluding the lower region.
func (o *Observer) band(yOffset, viewportHeight int) (int, int) {
	top := yOffset + o.topOffset
	span := int(float64(viewportHeight) * o.bandFraction)
	if span < 1 {
		span = 1
	}
	return top, top + span
}
