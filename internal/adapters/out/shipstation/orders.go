package shipstation

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// listPageSize covers a full day's queue in one page.
const listPageSize = 500

// awaitingShipmentStatus is the queue the processing run drains.
const awaitingShipmentStatus = "awaiting_shipment"

// ListPendingOrders returns every order awaiting shipment.
func (c *Client) ListPendingOrders(ctx context.Context) ([]*order.Order, error) {
	query := url.Values{}
	query.Set("pageSize", strconv.Itoa(listPageSize))
	query.Set("orderStatus", awaitingShipmentStatus)

	var list orderListDTO
	if err := c.do(ctx, http.MethodGet, "/orders", query, nil, &list); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(list.Orders))
	for _, dto := range list.Orders {
		o, err := orderToDomain(dto)
		if err != nil {
			// One malformed order must not block the day's queue.
			c.logger.WarnContext(ctx, "Skipping malformed order", "orderNumber", dto.OrderNumber, "error", err)
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, orderID int64) (*order.Order, error) {
	var dto orderDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), nil, nil, &dto); err != nil {
		return nil, err
	}
	return orderToDomain(dto)
}

// AddTag attaches a tag to an order immediately.
func (c *Client) AddTag(ctx context.Context, orderID int64, tag order.Tag) error {
	payload := struct {
		OrderID int64 `json:"orderId"`
		TagID   int64 `json:"tagId"`
	}{OrderID: orderID, TagID: int64(tag)}

	return c.do(ctx, http.MethodPost, "/orders/addtag", nil, payload, nil)
}

// CreateOrUpdateOrder issues the single write of the pipeline. A request
// without an id creates a fresh order; the backend's id for the written
// order is returned either way.
func (c *Client) CreateOrUpdateOrder(ctx context.Context, req ports.UpdateRequest) (int64, error) {
	payload := createOrderFromRequest(req)

	var resp createOrderResponseDTO
	if err := c.do(ctx, http.MethodPost, "/orders/createorder", nil, payload, &resp); err != nil {
		return 0, err
	}
	return resp.OrderID, nil
}

// CancelOrder cancels an order. The replacement path supersedes the original
// this way before creating the fresh copy.
func (c *Client) CancelOrder(ctx context.Context, orderID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", orderID), nil, nil, nil)
}

// HoldUntil places an operational hold on an order until the given date.
func (c *Client) HoldUntil(ctx context.Context, orderID int64, until time.Time) error {
	payload := struct {
		OrderID       int64  `json:"orderId"`
		HoldUntilDate string `json:"holdUntilDate"`
	}{OrderID: orderID, HoldUntilDate: until.Format(holdTimeLayout)}

	return c.do(ctx, http.MethodPost, "/orders/holduntil", nil, payload, nil)
}
