package shipping

// Plan is the shipping plan the policy engine produces for one order. It is
// ephemeral (produced fresh per order) and merged into that order's update
// request by the lifecycle pipeline.
type Plan struct {
	// Service is the selected service code. ServiceNone means the caller
	// applies the process-wide default.
	Service ServiceCode

	// Notes are accumulative free-text operational notes for the packing
	// crew (pack notes, replacement and delay annotations).
	Notes string

	// Temperature is the forecast high in °F used for the decision.
	Temperature int

	// ShipByOffset is the signed day delta added to the base ship-by date
	// (order date + 5 days). Negative means sooner.
	ShipByOffset int
}
