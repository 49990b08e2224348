package shipping

// Temperature thresholds and delivery-day ceilings for live-plant packing.
// Outside the 40-80°F band the delivery window tightens and a pack note is
// attached so the packer adds thermal protection.
const (
	// NeutralTemperature is assumed when the forecast is unavailable.
	NeutralTemperature = 70

	// HotThreshold is the forecast high above which an ice pack is required.
	HotThreshold = 80

	// ColdThreshold is the forecast high below which a heat pack is required.
	ColdThreshold = 40

	// DefaultDayCeiling is the maximum acceptable transit-day count under
	// moderate temperatures.
	DefaultDayCeiling = 4

	// ExtremeDayCeiling is the tightened ceiling under temperature extremes.
	ExtremeDayCeiling = 3
)

// Pack notes attached to the order update for the packing crew.
const (
	IcePackNote  = "[INCLUDE ICE PACK]"
	HeatPackNote = "[INCLUDE HEAT PACK]"
)

// TemperatureAdvice is the packing policy derived from the forecast high at
// the destination: the pack note to attach (if any) and the delivery-day
// ceiling rate-based selection must respect.
type TemperatureAdvice struct {
	High       int
	Note       string
	DayCeiling int
}

// AdviseForTemperature derives the packing policy for a forecast high in °F.
func AdviseForTemperature(high int) TemperatureAdvice {
	advice := TemperatureAdvice{High: high, DayCeiling: DefaultDayCeiling}

	switch {
	case high > HotThreshold:
		advice.Note = IcePackNote
		advice.DayCeiling = ExtremeDayCeiling
	case high < ColdThreshold:
		advice.Note = HeatPackNote
		advice.DayCeiling = ExtremeDayCeiling
	}

	return advice
}
