package ports

import (
	"context"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
)

// NotificationKind is the closed set of notification event types.
// Each constructor below builds exactly one kind, carrying only the fields
// relevant to that event.
type NotificationKind string

const (
	NotificationOrderAccepted    NotificationKind = "ORDER_ACCEPTED"
	NotificationOrderAssigned    NotificationKind = "ORDER_ASSIGNED"
	NotificationOrderDelivered   NotificationKind = "ORDER_DELIVERED"
	NotificationOrderDeclined    NotificationKind = "ORDER_DECLINED"
	NotificationOrderDelayed     NotificationKind = "ORDER_DELAYED"
	NotificationOrderRescheduled NotificationKind = "ORDER_RESCHEDULED"
	NotificationPendingOrders    NotificationKind = "PENDING_ORDERS_REMINDER"
)

// Notification is one user-facing message produced by a significant
// transition. Emission is fire-and-forget: a failure to notify never rolls
// back the transition that produced it.
type Notification struct {
	Recipient kernel.UUID
	Kind      NotificationKind
	Title     string
	Message   string
	OrderID   *kernel.UUID
}

// Notifier is the outbound port for notification emission.
type Notifier interface {
	// Notify emits the notification. Implementations log failures and
	// return nothing: callers must not couple transitions to delivery.
	Notify(ctx context.Context, notification Notification)
}

// NewOrderAcceptedNotification tells the merchant their order was approved.
func NewOrderAcceptedNotification(merchantID, orderID kernel.UUID, orderCode string) Notification {
	return Notification{
		Recipient: merchantID,
		Kind:      NotificationOrderAccepted,
		Title:     "Order accepted",
		Message:   fmt.Sprintf("Order %s was accepted and will be assigned for delivery.", orderCode),
		OrderID:   &orderID,
	}
}

// NewOrderAssignedNotification tells the worker an order is theirs to deliver.
func NewOrderAssignedNotification(deliveryManID, orderID kernel.UUID, orderCode string) Notification {
	return Notification{
		Recipient: deliveryManID,
		Kind:      NotificationOrderAssigned,
		Title:     "Order assigned",
		Message:   fmt.Sprintf("Order %s is assigned to you for delivery.", orderCode),
		OrderID:   &orderID,
	}
}

// NewOrderDeliveredNotification tells the merchant their order was delivered.
func NewOrderDeliveredNotification(merchantID, orderID kernel.UUID, orderCode string) Notification {
	return Notification{
		Recipient: merchantID,
		Kind:      NotificationOrderDelivered,
		Title:     "Order delivered",
		Message:   fmt.Sprintf("Order %s was delivered and settled.", orderCode),
		OrderID:   &orderID,
	}
}

// NewOrderDeclinedNotification tells the merchant their order was closed
// without delivery.
func NewOrderDeclinedNotification(merchantID, orderID kernel.UUID, orderCode, finalStatus string) Notification {
	return Notification{
		Recipient: merchantID,
		Kind:      NotificationOrderDeclined,
		Title:     "Order closed",
		Message:   fmt.Sprintf("Order %s was closed as %s.", orderCode, finalStatus),
		OrderID:   &orderID,
	}
}

// NewOrderDelayedNotification tells the merchant a delay was reported.
func NewOrderDelayedNotification(merchantID, orderID kernel.UUID, orderCode, reason string) Notification {
	return Notification{
		Recipient: merchantID,
		Kind:      NotificationOrderDelayed,
		Title:     "Delivery delayed",
		Message:   fmt.Sprintf("Order %s was reported delayed: %s", orderCode, reason),
		OrderID:   &orderID,
	}
}

// NewOrderRescheduledNotification tells the worker the delivery date moved.
func NewOrderRescheduledNotification(deliveryManID, orderID kernel.UUID, orderCode, newDate string) Notification {
	return Notification{
		Recipient: deliveryManID,
		Kind:      NotificationOrderRescheduled,
		Title:     "Delivery rescheduled",
		Message:   fmt.Sprintf("Order %s is rescheduled for %s.", orderCode, newDate),
		OrderID:   &orderID,
	}
}

// NewPendingOrdersReminderNotification nudges an admin about orders stuck
// in Pending.
func NewPendingOrdersReminderNotification(adminID kernel.UUID, count int) Notification {
	return Notification{
		Recipient: adminID,
		Kind:      NotificationPendingOrders,
		Title:     "Pending orders waiting",
		Message:   fmt.Sprintf("%d orders are waiting for review.", count),
	}
}
