// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, collaborator calls,
// and a recorded decision per processed order.
package commands
