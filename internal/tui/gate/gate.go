// Package gate decides which screen group should be visible for a
// given auth/onboarding stage. It is pure policy: the shell feeds it
// state and the current segment, and applies whatever it returns.
package gate

// Segment identifies a top-level screen group.
type Segment string

const (
	SegmentAuth       Segment = "auth"
	SegmentOnboarding Segment = "onboarding"
	SegmentTabs       Segment = "tabs"
	SegmentPlan       Segment = "plan"
	SegmentUnknown    Segment = ""
)

// Action is what the shell should do with the current segment.
type Action int

const (
	ActionStay Action = iota
	ActionRedirect
)

// Decision is the outcome of one gate evaluation. Target is only
// meaningful for ActionRedirect. Redirecting to the segment that is
// already active is permitted and harmless.
type Decision struct {
	Action Action
	Target Segment
}

func stay() Decision              { return Decision{Action: ActionStay} }
func redirect(t Segment) Decision { return Decision{Action: ActionRedirect, Target: t} }

// Decide maps (authenticated, onboarded, current segment) to a
// navigation decision. Rules are checked top to bottom; the first
// match wins. The guards are mutually exclusive, so the order only
// documents intent.
func Decide(authenticated, onboarded bool, seg Segment) Decision {
	if !authenticated {
		if seg != SegmentAuth {
			return redirect(SegmentAuth)
		}
		return stay()
	}
	if seg == SegmentAuth {
		if onboarded {
			return redirect(SegmentTabs)
		}
		return redirect(SegmentOnboarding)
	}
	if !onboarded {
		if seg == SegmentOnboarding {
			return stay()
		}
		return redirect(SegmentOnboarding)
	}
	if seg == SegmentTabs || seg == SegmentPlan {
		return stay()
	}
	return redirect(SegmentTabs)
}
