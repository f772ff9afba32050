package domain

// RejectReason tagged rejection reason of the validity checker.
// Display strings are derived from the tag at the presentation boundary;
// nothing in the engine classifies reasons by parsing text.
type RejectReason int

const (
	ReasonNone RejectReason = iota
	ReasonTooEarly
	ReasonTooLate
	ReasonRestrictedMorning
	ReasonRestrictedEvening
	ReasonCollision
)

// SkipCategory bucket used by batch summaries
type SkipCategory int

const (
	CategoryOther SkipCategory = iota
	CategoryCollision
	CategoryRestriction
)

// Category maps a rejection reason onto a skip-summary bucket
func (r RejectReason) Category() SkipCategory {
	switch r {
	case ReasonCollision:
		return CategoryCollision
	case ReasonRestrictedMorning, ReasonRestrictedEvening:
		return CategoryRestriction
	default:
		return CategoryOther
	}
}

// Message returns the user-facing reason string
func (r RejectReason) Message() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonTooEarly:
		return "Too Early"
	case ReasonTooLate:
		return "Too Late"
	case ReasonRestrictedMorning:
		return "Restricted Morning Hours"
	case ReasonRestrictedEvening:
		return "Restricted Evening Hours"
	case ReasonCollision:
		return "Collision"
	default:
		return "Rejected"
	}
}

func (r RejectReason) String() string {
	return r.Message()
}

// CheckResult результат проверки валидности слота
type CheckResult struct {
	Valid  bool
	Reason RejectReason
}
