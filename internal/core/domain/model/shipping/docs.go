// Package shipping contains the value objects the shipping policy works with:
// carrier service codes, rate quotes, transit estimates, temperature advice,
// and the Plan produced for each order.
//
// A Plan is ephemeral: it is produced fresh for every order and merged into
// that order's update request. Nothing in this package holds state across
// orders.
package shipping
