package commands

import (
	"errors"

	"github.com/google/uuid"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrProcessPendingOrdersCommandIsNotConstructed = errors.New(
		"ProcessPendingOrdersCommand must be created via NewProcessPendingOrdersCommand constructor",
	)
	ErrRunIDIsRequired = errors.New("run ID is required")
)

// ProcessPendingOrdersCommand represents a request to run the decision
// pipeline over every order currently awaiting shipment. The run ID groups
// the resulting decision records.
//
// Example:
//
//	cmd, err := NewProcessPendingOrdersCommand(uuid.New())
//	if err != nil {
//	    return fmt.Errorf("invalid run request: %w", err)
//	}
//
//	handler := NewProcessPendingOrdersCommandHandler(processor)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("processing run failed: %w", err)
//	}
type ProcessPendingOrdersCommand struct { //nolint:recvcheck //using for validation
	runID uuid.UUID

	guard guard.ConstructorGuard
}

// NewProcessPendingOrdersCommand creates a command to start a processing run.
// Validates that the run ID is not the zero UUID.
func NewProcessPendingOrdersCommand(runID uuid.UUID) (ProcessPendingOrdersCommand, error) {
	command := ProcessPendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRunID(runID); err != nil {
		return ProcessPendingOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessPendingOrdersCommandIsNotConstructed if validation fails.
func (c ProcessPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessPendingOrdersCommandIsNotConstructed)
}

// RunID returns the identifier grouping this run's decision records.
func (c ProcessPendingOrdersCommand) RunID() uuid.UUID {
	return c.runID
}

func (c *ProcessPendingOrdersCommand) setRunID(runID uuid.UUID) error {
	if runID == uuid.Nil {
		return ErrRunIDIsRequired
	}

	c.runID = runID

	return nil
}
