package zugferd

import "testing"

func TestProfileGuidelineURNsAreDistinct(t *testing.T) {
	profiles := []Profile{Minimum, BasicWL, Basic, EN16931, Extended, XRechnung}
	seen := map[string]Profile{}
	for _, p := range profiles {
		urn := p.GuidelineURN()
		if urn == "" {
			t.Errorf("%s has no guideline URN", p)
		}
		if other, ok := seen[urn]; ok {
			t.Errorf("%s and %s share guideline URN %q", p, other, urn)
		}
		seen[urn] = p
	}
}

func TestProfileIncludesLines(t *testing.T) {
	cases := map[Profile]bool{
		Minimum:   false,
		BasicWL:   false,
		Basic:     true,
		EN16931:   true,
		Extended:  true,
		XRechnung: true,
	}
	for p, want := range cases {
		if got := p.IncludesLines(); got != want {
			t.Errorf("%s.IncludesLines() = %v, want %v", p, got, want)
		}
	}
}

func TestProfileAFRelationship(t *testing.T) {
	cases := map[Profile]string{
		Minimum:   "Data",
		BasicWL:   "Data",
		Basic:     "Alternative",
		EN16931:   "Alternative",
		Extended:  "Alternative",
		XRechnung: "Alternative",
	}
	for p, want := range cases {
		if got := p.AFRelationship(); got != want {
			t.Errorf("%s.AFRelationship() = %q, want %q", p, got, want)
		}
	}
}

func TestProfileReducedPartiesOnlyMinimum(t *testing.T) {
	for _, p := range []Profile{Minimum, BasicWL, Basic, EN16931, Extended, XRechnung} {
		want := p == Minimum
		if got := p.ReducedParties(); got != want {
			t.Errorf("%s.ReducedParties() = %v, want %v", p, got, want)
		}
	}
}
