package commands

import (
	"errors"

	"github.com/google/uuid"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrProcessOrderCommandIsNotConstructed = errors.New(
		"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order ID must be greater than 0")
)

// ProcessOrderCommand represents a request to run the decision pipeline over
// a single order, identified by its backend order ID.
type ProcessOrderCommand struct { //nolint:recvcheck //using for validation
	runID   uuid.UUID
	orderID int64

	guard guard.ConstructorGuard
}

// NewProcessOrderCommand creates a command to process one order on demand.
// Validates that the run ID is not the zero UUID and the order ID is positive.
func NewProcessOrderCommand(runID uuid.UUID, orderID int64) (ProcessOrderCommand, error) {
	command := ProcessOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRunID(runID),
		command.setOrderID(orderID),
	); err != nil {
		return ProcessOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessOrderCommandIsNotConstructed if validation fails.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

// RunID returns the identifier grouping this run's decision records.
func (c ProcessOrderCommand) RunID() uuid.UUID {
	return c.runID
}

// OrderID returns the backend identifier of the order to process.
func (c ProcessOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *ProcessOrderCommand) setRunID(runID uuid.UUID) error {
	if runID == uuid.Nil {
		return ErrRunIDIsRequired
	}

	c.runID = runID

	return nil
}

func (c *ProcessOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID

	return nil
}
