package order

// Tag is a numeric tag identifier defined by the order-management
// collaborator. The ids are opaque externally-defined constants; this table
// is the single source of truth consumed by both tagging and classification
// logic.
type Tag int64

const (
	// TagExpedite marks orders whose customer paid for expedited shipping.
	TagExpedite Tag = 19055

	// TagReplacement marks orders that were restructured as replacements.
	// Its presence short-circuits replacement classification so an order is
	// never restructured twice.
	TagReplacement Tag = 25911

	// TagMonthly marks subscription orders (the rewritten original and every
	// synthesized future month). Like TagReplacement it short-circuits
	// replacement classification.
	TagMonthly Tag = 26005

	// TagNonliving marks orders whose every line item is nonliving.
	TagNonliving Tag = 28635

	// TagFlaggedForReplacement is set manually by support staff to force an
	// order through the replacement path. It is cleared while processing so
	// the order is restructured exactly once.
	TagFlaggedForReplacement Tag = 30806

	// TagImpatient marks orders whose customer has asked about their status.
	// It pre-sets the ship-by offset to -4 before any other branch runs.
	TagImpatient Tag = 30832

	// TagLate marks orders that blew through the lateness window.
	TagLate Tag = 31803
)

// tagNames maps every known tag to its symbolic name.
func tagNames() map[Tag]string {
	return map[Tag]string{
		TagExpedite:              "expedite",
		TagReplacement:           "replacement",
		TagMonthly:               "monthly",
		TagNonliving:             "nonliving",
		TagFlaggedForReplacement: "flagged-for-replacement",
		TagImpatient:             "impatient",
		TagLate:                  "late",
	}
}

// String returns the symbolic name of the tag, or "unknown" for ids outside
// the vocabulary.
func (t Tag) String() string {
	if name, ok := tagNames()[t]; ok {
		return name
	}
	return "unknown"
}
