package site

import "testing"

func TestResolveHref(t *testing.T) {
	cases := []struct {
		name         string
		currentRoute string
		raw          string
		wantRoute    string
		wantFragment string
		wantExternal bool
	}{
		{
			name:         "scheme is external",
			currentRoute: "guide/setup",
			raw:          "https://example.com/docs",
			wantExternal: true,
		},
		{
			name:         "mailto is external",
			currentRoute: "index",
			raw:          "mailto:docs@example.com",
			wantExternal: true,
		},
		{
			name:         "bare fragment stays on current route",
			currentRoute: "guide/setup",
			raw:          "#configuration",
			wantRoute:    "guide/setup",
			wantFragment: "configuration",
		},
		{
			name:         "sibling document",
			currentRoute: "guide/setup",
			raw:          "install.md",
			wantRoute:    "guide/install",
		},
		{
			name:         "sibling with fragment",
			currentRoute: "guide/setup",
			raw:          "install.md#requirements",
			wantRoute:    "guide/install",
			wantFragment: "requirements",
		},
		{
			name:         "parent relative",
			currentRoute: "guide/setup",
			raw:          "../api/auth.md",
			wantRoute:    "api/auth",
		},
		{
			name:         "absolute path",
			currentRoute: "guide/setup",
			raw:          "/reference/cli.md#flags",
			wantRoute:    "reference/cli",
			wantFragment: "flags",
		},
		{
			name:         "extensionless relative",
			currentRoute: "index",
			raw:          "about",
			wantRoute:    "about",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			link := resolveHref(tc.currentRoute, "label", tc.raw)
			if link.External != tc.wantExternal {
				t.Fatalf("external = %v, want %v", link.External, tc.wantExternal)
			}
			if link.External {
				return
			}
			if link.Route != tc.wantRoute {
				t.Fatalf("route = %q, want %q", link.Route, tc.wantRoute)
			}
			if link.Fragment != tc.wantFragment {
				t.Fatalf("fragment = %q, want %q", link.Fragment, tc.wantFragment)
			}
			if link.Raw != tc.raw {
				t.Fatalf("raw = %q, want %q", link.Raw, tc.raw)
			}
		})
	}
}

func TestHasScheme(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"https://example.com", true},
		{"ftp://host", true},
		{"mailto:a@b", true},
		{"guide/setup.md", false},
		{"#anchor", false},
		{"./relative.md", false},
		{":leading", false},
	}
	for _, tc := range cases {
		if got := hasScheme(tc.raw); got != tc.want {
			t.Fatalf("hasScheme(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
