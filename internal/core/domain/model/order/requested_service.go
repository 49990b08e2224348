package order

import "strings"

// RequestedServiceKind classifies the free-text requested-shipping field into
// the variants the policy engine acts on. The classification is computed once
// per order instead of substring-matching inside branches.
//
// The matching is a brittle free-text coupling to the storefront's checkout
// option labels; if the storefront adds new expedited options the vocabulary
// here must follow.
type RequestedServiceKind int

const (
	// RequestedNone means the requested-shipping text names no special tier.
	RequestedNone RequestedServiceKind = iota

	// RequestedExpedite means the customer paid for expedited shipping.
	RequestedExpedite

	// RequestedSelect means the customer paid for the 3 Day Select tier.
	RequestedSelect
)

// ClassifyRequestedService maps the requested-shipping free text to its
// variant. "EXPEDITE" wins over "Select" when both substrings appear.
func ClassifyRequestedService(requested string) RequestedServiceKind {
	if strings.Contains(requested, "EXPEDITE") {
		return RequestedExpedite
	}
	if strings.Contains(requested, "Select") {
		return RequestedSelect
	}
	return RequestedNone
}

// String returns the variant name for logs.
func (k RequestedServiceKind) String() string {
	switch k {
	case RequestedExpedite:
		return "expedite"
	case RequestedSelect:
		return "select"
	default:
		return "none"
	}
}
