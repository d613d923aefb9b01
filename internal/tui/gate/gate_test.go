package gate

import "testing"

func TestDecisionTable(t *testing.T) {
	cases := []struct {
		name          string
		authenticated bool
		onboarded     bool
		seg           Segment
		want          Decision
	}{
		{"unauthed elsewhere redirects to auth", false, false, SegmentTabs, Decision{ActionRedirect, SegmentAuth}},
		{"unauthed on plan redirects to auth", false, true, SegmentPlan, Decision{ActionRedirect, SegmentAuth}},
		{"unauthed unknown redirects to auth", false, false, SegmentUnknown, Decision{ActionRedirect, SegmentAuth}},
		{"unauthed on auth stays", false, false, SegmentAuth, Decision{ActionStay, SegmentUnknown}},
		{"authed onboarded on auth goes to tabs", true, true, SegmentAuth, Decision{ActionRedirect, SegmentTabs}},
		{"authed not onboarded on auth goes to onboarding", true, false, SegmentAuth, Decision{ActionRedirect, SegmentOnboarding}},
		{"authed not onboarded on tabs goes to onboarding", true, false, SegmentTabs, Decision{ActionRedirect, SegmentOnboarding}},
		{"authed not onboarded on plan goes to onboarding", true, false, SegmentPlan, Decision{ActionRedirect, SegmentOnboarding}},
		{"authed not onboarded unknown goes to onboarding", true, false, SegmentUnknown, Decision{ActionRedirect, SegmentOnboarding}},
		{"authed not onboarded on onboarding stays", true, false, SegmentOnboarding, Decision{ActionStay, SegmentUnknown}},
		{"authed onboarded on tabs stays", true, true, SegmentTabs, Decision{ActionStay, SegmentUnknown}},
		{"authed onboarded on plan stays", true, true, SegmentPlan, Decision{ActionStay, SegmentUnknown}},
		{"authed onboarded on onboarding goes to tabs", true, true, SegmentOnboarding, Decision{ActionRedirect, SegmentTabs}},
		{"authed onboarded unknown goes to tabs", true, true, SegmentUnknown, Decision{ActionRedirect, SegmentTabs}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Decide(c.authenticated, c.onboarded, c.seg)
			if got != c.want {
				t.Errorf("Decide(%v, %v, %q) = %+v, want %+v", c.authenticated, c.onboarded, c.seg, got, c.want)
			}
		})
	}
}

// Every input combination must resolve to exactly one defined outcome:
// a stay, or a redirect with a non-empty target.
func TestDecisionTotality(t *testing.T) {
	segments := []Segment{SegmentAuth, SegmentOnboarding, SegmentTabs, SegmentPlan, SegmentUnknown}
	for _, authed := range []bool{false, true} {
		for _, onboarded := range []bool{false, true} {
			for _, seg := range segments {
				d := Decide(authed, onboarded, seg)
				switch d.Action {
				case ActionStay:
					// fine
				case ActionRedirect:
					if d.Target == SegmentUnknown {
						t.Errorf("Decide(%v, %v, %q) redirects to unknown", authed, onboarded, seg)
					}
				default:
					t.Errorf("Decide(%v, %v, %q) returned undefined action %d", authed, onboarded, seg, d.Action)
				}
			}
		}
	}
}

// A redirect decision re-evaluated at its own target must stay. This
// is what makes redirects idempotent: the gate converges in one hop.
func TestDecisionConverges(t *testing.T) {
	segments := []Segment{SegmentAuth, SegmentOnboarding, SegmentTabs, SegmentPlan, SegmentUnknown}
	for _, authed := range []bool{false, true} {
		for _, onboarded := range []bool{false, true} {
			for _, seg := range segments {
				d := Decide(authed, onboarded, seg)
				if d.Action != ActionRedirect {
					continue
				}
				next := Decide(authed, onboarded, d.Target)
				if next.Action != ActionStay {
					t.Errorf("Decide(%v, %v, %q) -> %q does not converge: %+v", authed, onboarded, seg, d.Target, next)
				}
			}
		}
	}
}
