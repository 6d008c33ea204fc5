package site

import (
	"testing"

	"lectern/internal/types"
)

func testDocs() []types.Document {
	return []types.Document{
		{
			Route: "guide",
			Title: "Guide",
			Sections: []types.Section{
				{Anchor: "intro", Label: "Intro", Route: "guide", Level: 2},
				{Anchor: "setup", Label: "Setup", Route: "guide", Level: 2},
			},
		},
		{
			Route: "api",
			Title: "API",
			Sections: []types.Section{
				{Anchor: "intro", Label: "Intro", Route: "api", Level: 2},
				{Anchor: "auth", Label: "Auth", Route: "api", Level: 2},
			},
		},
	}
}

func TestRegistryQualifiesDuplicateAnchors(t *testing.T) {
	registry := NewRegistry(testDocs())

	first, ok := registry.Lookup("intro")
	if !ok || first.Route != "guide" {
		t.Fatalf("expected bare id to belong to first claimant, got %+v ok=%v", first, ok)
	}
	second, ok := registry.Lookup("api:intro")
	if !ok || second.Route != "api" {
		t.Fatalf("expected later claimant to be route-qualified, got %+v ok=%v", second, ok)
	}
}

func TestRegistryResolve(t *testing.T) {
	registry := NewRegistry(testDocs())

	// Per-route anchor resolution is unaffected by ID qualification.
	section, ok := registry.Resolve("api", "intro")
	if !ok || section.ID != "api:intro" {
		t.Fatalf("expected api#intro to resolve to qualified id, got %+v ok=%v", section, ok)
	}
	// Route-qualified fragments keep working on their own route.
	if _, ok := registry.Resolve("api", "api:intro"); !ok {
		t.Fatalf("expected qualified fragment to resolve")
	}
	if _, ok := registry.Resolve("guide", "auth"); ok {
		t.Fatalf("expected foreign anchor to miss")
	}
	if _, ok := registry.Resolve("guide", ""); ok {
		t.Fatalf("expected empty fragment to miss")
	}
}

func TestRegistryDefaultRoute(t *testing.T) {
	registry := NewRegistry(testDocs())
	if got := registry.DefaultRoute(); got != "guide" {
		t.Fatalf("expected first document as default, got %q", got)
	}

	withIndex := append(testDocs(), types.Document{Route: "index", Title: "Home"})
	registry = NewRegistry(withIndex)
	if got := registry.DefaultRoute(); got != "index" {
		t.Fatalf("expected index preferred as default, got %q", got)
	}
}

func TestRegistryDefaultSection(t *testing.T) {
	registry := NewRegistry(testDocs())

	section, ok := registry.DefaultSection("api")
	if !ok || section.Anchor != "intro" {
		t.Fatalf("expected first section of api, got %+v ok=%v", section, ok)
	}
	section, ok = registry.DefaultSection("ghost")
	if !ok || section.Route != "guide" {
		t.Fatalf("expected fallback to default route's first section, got %+v ok=%v", section, ok)
	}

	empty := NewRegistry([]types.Document{{Route: "bare", Title: "Bare"}})
	if _, ok := empty.DefaultSection("bare"); ok {
		t.Fatalf("expected sectionless document to report no default")
	}
}

func TestRegistryGroups(t *testing.T) {
	registry := NewRegistry(testDocs())

	groups := registry.Groups()
	if len(groups) != 2 {
		t.Fatalf("expected one group per document, got %d", len(groups))
	}
	if groups[0].ID != "grp:guide" || groups[0].Label != "Guide" {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if len(groups[1].SectionIDs) != 2 || groups[1].SectionIDs[0] != "api:intro" {
		t.Fatalf("unexpected api group sections: %v", groups[1].SectionIDs)
	}

	section, _ := registry.Lookup("setup")
	if section.GroupID != "grp:guide" {
		t.Fatalf("expected section to carry its group id, got %q", section.GroupID)
	}
	group, ok := registry.Group("grp:api")
	if !ok || group.Route != "api" {
		t.Fatalf("expected group lookup by id, got %+v ok=%v", group, ok)
	}
	if got := registry.SectionsFor("api"); len(got) != 2 {
		t.Fatalf("expected 2 sections for api, got %d", len(got))
	}
	if registry.SectionsFor("ghost") != nil {
		t.Fatalf("expected nil sections for unknown route")
	}
}
