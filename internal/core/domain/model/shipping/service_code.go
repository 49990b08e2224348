package shipping

// ServiceCode identifies a carrier service level. The codes are the carrier
// integration's wire identifiers and are used verbatim in rate quotes,
// transit estimates, and order updates. The zero value means "no service
// selected"; the caller substitutes its default.
type ServiceCode string

const (
	// ServiceNone is the absent selection; callers apply DefaultService.
	ServiceNone ServiceCode = ""

	// Service2ndDayAir is the expedited two-day tier.
	Service2ndDayAir ServiceCode = "ups_2nd_day_air"

	// Service3DaySelect is the paid three-day tier.
	Service3DaySelect ServiceCode = "ups_3_day_select"

	// ServiceGround is the standard ground tier.
	ServiceGround ServiceCode = "ups_ground"

	// ServiceGroundSaver is the economy ground tier and the process-wide
	// default when no decision is made.
	ServiceGroundSaver ServiceCode = "ups_ground_saver"
)

// DefaultService is substituted whenever the policy engine returns no
// service selection.
const DefaultService = ServiceGroundSaver

// IsNone reports whether the code is the absent selection.
func (c ServiceCode) IsNone() bool {
	return c == ServiceNone
}

// String returns the wire identifier.
func (c ServiceCode) String() string {
	if c.IsNone() {
		return "none"
	}
	return string(c)
}
