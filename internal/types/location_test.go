package types

import "testing"

func TestParseLocation(t *testing.T) {
	cases := []struct {
		raw          string
		wantRoute    string
		wantFragment string
	}{
		{"guide/setup#basics", "guide/setup", "basics"},
		{"guide/setup", "guide/setup", ""},
		{"#basics", "", "basics"},
		{"  guide  #  basics ", "guide", "basics"},
		{"", "", ""},
		{"route#", "route", ""},
	}
	for _, tc := range cases {
		loc := ParseLocation(tc.raw)
		if loc.Route != tc.wantRoute || loc.Fragment != tc.wantFragment {
			t.Fatalf("ParseLocation(%q) = %+v, want route=%q fragment=%q", tc.raw, loc, tc.wantRoute, tc.wantFragment)
		}
	}
}

func TestLocationString(t *testing.T) {
	if got := (Location{Route: "guide", Fragment: "setup"}).String(); got != "guide#setup" {
		t.Fatalf("unexpected deep link: %q", got)
	}
	if got := (Location{Route: "guide"}).String(); got != "guide" {
		t.Fatalf("expected bare route without fragment, got %q", got)
	}
}

func TestLocationRoundTrip(t *testing.T) {
	loc := Location{Route: "api/errors", Fragment: "timeouts"}
	if got := ParseLocation(loc.String()); got != loc {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestLocationIsZero(t *testing.T) {
	if !(Location{}).IsZero() {
		t.Fatalf("expected zero location")
	}
	if (Location{Fragment: "x"}).IsZero() {
		t.Fatalf("expected fragment-only location to be non-zero")
	}
}
