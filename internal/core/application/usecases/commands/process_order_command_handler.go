package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// ProcessOrderCommandHandler handles on-demand processing of a single order.
// Unlike a full run, a failure to fetch the order is returned to the caller.
type ProcessOrderCommandHandler struct {
	orders    ports.OrderReader
	processor OrderLifecycleProcessor
}

// NewProcessOrderCommandHandler creates a handler for single-order processing.
func NewProcessOrderCommandHandler(orders ports.OrderReader, processor OrderLifecycleProcessor) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		orders:    orders,
		processor: processor,
	}
}

// Handle fetches the order and drives it through the pipeline. The pipeline
// outcome itself lands in the decision log rather than the returned error.
func (h *ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orders.GetOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	h.processor.Process(ctx, cmd.RunID(), o)

	return nil
}
