package shipping

// Operational note fragments appended to the plan for the packing crew. The
// exact strings are part of the warehouse workflow and must not drift.
const (
	// NonlivingNote replaces all other notes on all-nonliving orders.
	NonlivingNote = "[NONLIVING - No Perlite]"

	// ExpeditePrefix leads the notes of customer-expedited orders.
	ExpeditePrefix = "EXPEDITE "

	// ReplacementNote is appended, leading space included, when an order is
	// restructured as a replacement.
	ReplacementNote = " [REPLACEMENT - ADD 3 FREE STEMS]"

	// DelayNote is appended, leading space included, to late orders that
	// contain living items.
	DelayNote = " [ADD 3 FREE STEMS FOR DELAY]"
)
