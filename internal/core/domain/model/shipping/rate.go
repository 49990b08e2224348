package shipping

// RateQuote is a single carrier quote for shipping one package.
type RateQuote struct {
	Service ServiceCode
	Cost    float64
}

// TransitEstimate maps service codes to the carrier-reported number of
// business transit days. A missing key means the carrier reported no usable
// estimate for that service; such services are ineligible for rate-based
// selection.
type TransitEstimate map[ServiceCode]int

// Days returns the business-day estimate for a service and whether an
// estimate is known.
func (t TransitEstimate) Days(service ServiceCode) (int, bool) {
	days, ok := t[service]
	return days, ok
}
