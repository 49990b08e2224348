package commands

import (
	"context"
)

// ProcessPendingOrdersCommandHandler handles full processing runs: every
// order awaiting shipment is pulled and driven through the decision pipeline.
type ProcessPendingOrdersCommandHandler struct {
	processor OrderLifecycleProcessor
}

// NewProcessPendingOrdersCommandHandler creates a handler for processing runs.
func NewProcessPendingOrdersCommandHandler(processor OrderLifecycleProcessor) ProcessPendingOrdersCommandHandler {
	return ProcessPendingOrdersCommandHandler{
		processor: processor,
	}
}

// Handle processes the run command. The only fatal failure is the initial
// pending-order listing; per-order failures are recorded and skipped.
func (h *ProcessPendingOrdersCommandHandler) Handle(ctx context.Context, cmd ProcessPendingOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.processor.ProcessPending(ctx, cmd.RunID())
}
