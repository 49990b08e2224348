package shipstation

import (
	"strconv"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// Wire timestamp layouts. Order timestamps carry seven fractional digits;
// ship-by and hold dates are bare dates.
const (
	orderTimeLayout = "2006-01-02T15:04:05.0000000"
	dateLayout      = "2006-01-02"
	holdTimeLayout  = "2006-01-02T15:04:05"
)

// shipByBaseDays is the base ship-by window: order date + 5 days, shifted by
// the plan's offset.
const shipByBaseDays = 5

type addressDTO struct {
	Name        string `json:"name"`
	Street1     string `json:"street1"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
	Residential bool   `json:"residential"`
}

type weightDTO struct {
	Value float64 `json:"value"`
	Units string  `json:"units"`
}

type dimensionsDTO struct {
	Units  string  `json:"units"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type itemDTO struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type advancedOptionsDTO struct {
	StoreID      int64  `json:"storeId"`
	Source       string `json:"source"`
	CustomField1 string `json:"customField1"`
	CustomField2 string `json:"customField2"`
	CustomField3 string `json:"customField3"`
}

type orderDTO struct {
	OrderID                  int64              `json:"orderId"`
	OrderKey                 string             `json:"orderKey"`
	OrderNumber              string             `json:"orderNumber"`
	OrderDate                string             `json:"orderDate"`
	PaymentDate              string             `json:"paymentDate"`
	OrderStatus              string             `json:"orderStatus"`
	BillTo                   addressDTO         `json:"billTo"`
	ShipTo                   addressDTO         `json:"shipTo"`
	Items                    []itemDTO          `json:"items"`
	TagIDs                   []int64            `json:"tagIds"`
	Weight                   weightDTO          `json:"weight"`
	Dimensions               dimensionsDTO      `json:"dimensions"`
	OrderTotal               float64            `json:"orderTotal"`
	RequestedShippingService string             `json:"requestedShippingService"`
	CustomerEmail            string             `json:"customerEmail"`
	AdvancedOptions          advancedOptionsDTO `json:"advancedOptions"`
}

type orderListDTO struct {
	Orders []orderDTO `json:"orders"`
}

// createOrderDTO is the orders/createorder payload. OrderID is omitted for
// replacement creations so the backend assigns a fresh one.
type createOrderDTO struct {
	OrderID                  int64              `json:"orderId,omitempty"`
	OrderKey                 string             `json:"orderKey"`
	OrderNumber              string             `json:"orderNumber"`
	OrderDate                string             `json:"orderDate"`
	OrderStatus              string             `json:"orderStatus"`
	BillTo                   addressDTO         `json:"billTo"`
	ShipTo                   addressDTO         `json:"shipTo"`
	Items                    []itemDTO          `json:"items"`
	TagIDs                   []int64            `json:"tagIds"`
	Weight                   weightDTO          `json:"weight"`
	CarrierCode              string             `json:"carrierCode"`
	ServiceCode              string             `json:"serviceCode"`
	RequestedShippingService string             `json:"requestedShippingService"`
	CustomerEmail            string             `json:"customerEmail"`
	Dimensions               dimensionsDTO      `json:"dimensions"`
	AdvancedOptions          advancedOptionsDTO `json:"advancedOptions"`
	ShipByDate               string             `json:"shipByDate"`
}

type createOrderResponseDTO struct {
	OrderID int64 `json:"orderId"`
}

func addressToDomain(dto addressDTO) order.Address {
	return order.Address(dto)
}

func addressFromDomain(a order.Address) addressDTO {
	return addressDTO(a)
}

func itemsToDomain(dtos []itemDTO) []order.LineItem {
	items := make([]order.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, order.LineItem(dto))
	}
	return items
}

func itemsFromDomain(items []order.LineItem) []itemDTO {
	dtos := make([]itemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemDTO(item))
	}
	return dtos
}

func tagsToDomain(ids []int64) []order.Tag {
	tags := make([]order.Tag, 0, len(ids))
	for _, id := range ids {
		tags = append(tags, order.Tag(id))
	}
	return tags
}

func tagsFromDomain(tags []order.Tag) []int64 {
	ids := make([]int64, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, int64(tag))
	}
	return ids
}

func orderToDomain(dto orderDTO) (*order.Order, error) {
	createdAt, err := time.Parse(orderTimeLayout, dto.OrderDate)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderDate", err)
	}

	var paidAt *time.Time
	if dto.PaymentDate != "" {
		paid, parseErr := time.Parse(orderTimeLayout, dto.PaymentDate)
		if parseErr != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("paymentDate", parseErr)
		}
		paidAt = &paid
	}

	return &order.Order{
		ID:                dto.OrderID,
		Number:            dto.OrderNumber,
		Key:               dto.OrderKey,
		Status:            dto.OrderStatus,
		CreatedAt:         createdAt,
		PaidAt:            paidAt,
		BillTo:            addressToDomain(dto.BillTo),
		ShipTo:            addressToDomain(dto.ShipTo),
		Weight:            order.Weight(dto.Weight),
		Dimensions:        order.Dimensions(dto.Dimensions),
		Total:             dto.OrderTotal,
		RequestedShipping: dto.RequestedShippingService,
		CustomerEmail:     dto.CustomerEmail,
		Tags:              tagsToDomain(dto.TagIDs),
		Items:             itemsToDomain(dto.Items),
		Advanced: order.AdvancedOptions{
			StoreID:      dto.AdvancedOptions.StoreID,
			Source:       dto.AdvancedOptions.Source,
			CustomField1: dto.AdvancedOptions.CustomField1,
			CustomField2: dto.AdvancedOptions.CustomField2,
			CustomField3: dto.AdvancedOptions.CustomField3,
		},
	}, nil
}

// createOrderFromRequest maps the pipeline's update request to the wire
// payload. The absolute ship-by date is derived here: order date plus the
// base window plus the plan's signed offset. Packages always ship in the
// standard box.
func createOrderFromRequest(req ports.UpdateRequest) createOrderDTO {
	shipBy := req.Date.AddDate(0, 0, shipByBaseDays+req.ShipByOffset)

	// The forecast field stays empty when no forecast was taken for this
	// write (e.g. the subscription rewrite, which precedes the decision).
	temperature := ""
	if req.Temperature != 0 {
		temperature = strconv.Itoa(req.Temperature)
	}

	return createOrderDTO{
		OrderID:                  req.ID,
		OrderKey:                 req.Key,
		OrderNumber:              req.Number,
		OrderDate:                req.Date.Format(orderTimeLayout),
		OrderStatus:              req.Status,
		BillTo:                   addressFromDomain(req.BillTo),
		ShipTo:                   addressFromDomain(req.ShipTo),
		Items:                    itemsFromDomain(req.Items),
		TagIDs:                   tagsFromDomain(req.Tags),
		Weight:                   weightDTO(req.Weight),
		CarrierCode:              carrierCode,
		ServiceCode:              string(req.Service),
		RequestedShippingService: req.RequestedShipping,
		CustomerEmail:            req.CustomerEmail,
		Dimensions:               dimensionsDTO{Units: "inches", Length: 8.0, Width: 6.0, Height: 4.0},
		AdvancedOptions: advancedOptionsDTO{
			StoreID:      req.StoreID,
			Source:       req.Source,
			CustomField1: req.Notes,
			CustomField2: temperature,
			CustomField3: req.Reminder,
		},
		ShipByDate: shipBy.Format(dateLayout),
	}
}
