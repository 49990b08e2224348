package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"fulfillment/internal/core/domain/model/decision"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/shipping"
	"fulfillment/internal/core/ports"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) ListPendingOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderStore) GetOrder(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderStore) AddTag(ctx context.Context, orderID int64, tag order.Tag) error {
	args := m.Called(ctx, orderID, tag)
	return args.Error(0)
}

func (m *MockOrderStore) CreateOrUpdateOrder(ctx context.Context, req ports.UpdateRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderStore) CancelOrder(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockOrderStore) HoldUntil(ctx context.Context, orderID int64, until time.Time) error {
	args := m.Called(ctx, orderID, until)
	return args.Error(0)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) ProductCategories(ctx context.Context, sku string) (product.CategorySet, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(product.CategorySet), args.Error(1)
}

type MockRateService struct{ mock.Mock }

func (m *MockRateService) QuoteRates(ctx context.Context, req ports.RateRequest) ([]shipping.RateQuote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.RateQuote), args.Error(1)
}

type MockCarrierClient struct{ mock.Mock }

func (m *MockCarrierClient) Authorize(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockCarrierClient) TransitTimes(ctx context.Context, token string, req ports.TransitRequest) (shipping.TransitEstimate, error) {
	args := m.Called(ctx, token, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(shipping.TransitEstimate), args.Error(1)
}

type MockWeatherService struct{ mock.Mock }

func (m *MockWeatherService) ForecastHighs(ctx context.Context, postalCode string) ([]float64, error) {
	args := m.Called(ctx, postalCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

type MockDecisionLog struct{ mock.Mock }

func (m *MockDecisionLog) Append(ctx context.Context, rec decision.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
