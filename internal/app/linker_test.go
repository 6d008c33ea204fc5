package app

import (
	"testing"

	"lectern/internal/types"
)

func TestLinkRingCycle(t *testing.T) {
	ring := newLinkRing()
	ring.set([]types.Link{
		{Label: "one"},
		{Label: "two"},
		{Label: "three"},
	})

	if _, ok := ring.current(); ok {
		t.Fatalf("expected no focus before cycling")
	}

	link, ok := ring.cycle(1)
	if !ok || link.Label != "one" {
		t.Fatalf("expected first forward cycle on one, got %q ok=%v", link.Label, ok)
	}
	link, _ = ring.cycle(1)
	link, _ = ring.cycle(1)
	if link.Label != "three" {
		t.Fatalf("expected three, got %q", link.Label)
	}
	link, _ = ring.cycle(1)
	if link.Label != "one" {
		t.Fatalf("expected wrap to one, got %q", link.Label)
	}
	link, _ = ring.cycle(-1)
	if link.Label != "three" {
		t.Fatalf("expected backward wrap to three, got %q", link.Label)
	}
}

func TestLinkRingBackwardEntry(t *testing.T) {
	ring := newLinkRing()
	ring.set([]types.Link{{Label: "one"}, {Label: "two"}})

	link, ok := ring.cycle(-1)
	if !ok || link.Label != "two" {
		t.Fatalf("expected backward entry on last link, got %q ok=%v", link.Label, ok)
	}
}

func TestLinkRingEmptyAndReset(t *testing.T) {
	ring := newLinkRing()
	if _, ok := ring.cycle(1); ok {
		t.Fatalf("expected empty ring to report no link")
	}

	ring.set([]types.Link{{Label: "one"}})
	ring.cycle(1)
	ring.set([]types.Link{{Label: "other"}})
	if _, ok := ring.current(); ok {
		t.Fatalf("expected focus cleared when links are replaced")
	}

	ring.cycle(1)
	ring.clearFocus()
	if _, ok := ring.current(); ok {
		t.Fatalf("expected focus cleared explicitly")
	}
}
