package decision

// Outcome classifies how the pipeline concluded for one order.
//
// Skipped is a deliberate no-op (e.g. a replacement whose item list emptied
// after stripping nonliving items), not a failure.
type Outcome int

const (
	// Unknown represents an invalid or undefined outcome.
	Unknown Outcome = iota

	// Updated means the original order was rewritten in place.
	Updated

	// Created means a fresh order was issued (replacement restructuring).
	Created

	// Skipped means the order was deliberately left untouched.
	Skipped

	// Failed means the final update could not be issued.
	Failed
)

// getOutcomeStrings returns a map of Outcome values to their string representations.
func getOutcomeStrings() map[Outcome]string {
	return map[Outcome]string{
		Unknown: "Unknown",
		Updated: "Updated",
		Created: "Created",
		Skipped: "Skipped",
		Failed:  "Failed",
	}
}

// String returns the human-readable name of the outcome.
// It implements the fmt.Stringer interface and is safe to call on any
// Outcome value, including invalid ones.
func (o Outcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "Unknown"
}
