package http

import (
	"time"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest is one requested order line.
type ItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	IsFree    bool   `json:"isFree"`
}

// DiscountRequest describes the optional discount on an order.
// Value carries the percentage, amount or custom price depending on kind;
// ProductID, BuyQty and GetQty apply only to BUY_X_GET_Y.
type DiscountRequest struct {
	Kind      string          `json:"kind"`
	Value     decimal.Decimal `json:"value"`
	ProductID string          `json:"productId,omitempty"`
	BuyQty    int             `json:"buyQty,omitempty"`
	GetQty    int             `json:"getQty,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	MerchantID    string           `json:"merchantId"`
	City          string           `json:"city"`
	PaymentMethod string           `json:"paymentMethod"`
	Items         []ItemRequest    `json:"items"`
	Discount      *DiscountRequest `json:"discount,omitempty"`
}

// AcceptOrderRequest is the body of POST /api/v1/orders/:id/accept.
type AcceptOrderRequest struct {
	Notes string `json:"notes,omitempty"`
}

// AssignOrderRequest is the body of POST /api/v1/orders/:id/assign.
type AssignOrderRequest struct {
	DeliveryManID string `json:"deliveryManId"`
}

// DeliverOrderRequest is the body of POST /api/v1/orders/:id/deliver.
type DeliverOrderRequest struct {
	Notes    string `json:"notes,omitempty"`
	Location string `json:"location,omitempty"`
}

// DeclineOrderRequest is the body of POST /api/v1/orders/:id/decline.
// Target is either "Rejected" or "Cancelled".
type DeclineOrderRequest struct {
	Target string `json:"target"`
	Reason string `json:"reason,omitempty"`
}

// ReportDelayRequest is the body of POST /api/v1/orders/:id/report.
type ReportDelayRequest struct {
	Reason string `json:"reason"`
}

// ResolveDelayRequest is the body of POST /api/v1/orders/:id/resolve.
// NewDeliveryDate uses the YYYY-MM-DD layout.
type ResolveDelayRequest struct {
	NewDeliveryDate string `json:"newDeliveryDate"`
}

// OrderResponse is the representation returned after creating an order.
type OrderResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Status          string          `json:"status"`
	City            string          `json:"city"`
	PaymentMethod   string          `json:"paymentMethod"`
	OriginalTotal   decimal.Decimal `json:"originalTotal"`
	TotalDiscount   decimal.Decimal `json:"totalDiscount"`
	Total           decimal.Decimal `json:"total"`
	MerchantEarning decimal.Decimal `json:"merchantEarning"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func orderToResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID().String(),
		Code:            o.Code(),
		Status:          o.Status().String(),
		City:            o.City().String(),
		PaymentMethod:   o.PaymentMethod().String(),
		OriginalTotal:   o.OriginalTotalPrice(),
		TotalDiscount:   o.TotalDiscount(),
		Total:           o.TotalPrice(),
		MerchantEarning: o.MerchantEarning(),
		CreatedAt:       o.CreatedAt(),
	}
}

// UnassignedOrderResponse is one claimable order.
type UnassignedOrderResponse struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	MerchantID string          `json:"merchantId"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func unassignedToResponse(resp queries.GetUnassignedOrdersQueryResponse) UnassignedOrderResponse {
	return UnassignedOrderResponse{
		ID:         resp.ID.String(),
		Code:       resp.Code,
		MerchantID: resp.MerchantID.String(),
		Total:      resp.TotalPrice,
		CreatedAt:  resp.CreatedAt,
	}
}

// TimelineEntryResponse is one attempt-ledger entry.
type TimelineEntryResponse struct {
	Number        int       `json:"number"`
	Outcome       string    `json:"outcome"`
	DeliveryManID *string   `json:"deliveryManId,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Location      string    `json:"location,omitempty"`
	AttemptedAt   time.Time `json:"attemptedAt"`
}

func timelineToResponse(entry queries.GetOrderTimelineQueryResponse) TimelineEntryResponse {
	resp := TimelineEntryResponse{
		Number:      entry.Number,
		Outcome:     entry.Outcome,
		Reason:      entry.Reason,
		Notes:       entry.Notes,
		Location:    entry.Location,
		AttemptedAt: entry.AttemptedAt,
	}
	if entry.DeliveryManID != nil {
		id := entry.DeliveryManID.String()
		resp.DeliveryManID = &id
	}
	return resp
}
