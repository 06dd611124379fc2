// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: each command is a
// validated value object, each handler drives a single unit of work, and
// every side effect of a status transition commits or rolls back together.
package commands

import (
	"context"

	"orderflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AttemptRepoFactory provides access to the attempt ledger within a transaction.
	AttemptRepoFactory interface {
		AttemptRepository() ports.AttemptRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// MerchantRepoFactory provides access to the merchant repository within a transaction.
	MerchantRepoFactory interface {
		MerchantRepository() ports.MerchantRepository
	}

	// DeliveryManRepoFactory provides access to the delivery-worker repository within a transaction.
	DeliveryManRepoFactory interface {
		DeliveryManRepository() ports.DeliveryManRepository
	}

	// CreateUoW manages transactions for order creation: the order itself,
	// the merchant's fee, and the stock pre-check.
	CreateUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		MerchantRepoFactory
	}

	// CreateUoWFactory creates CreateUoW instances.
	CreateUoWFactory interface {
		Create() CreateUoW
	}

	// TransitionUoW manages transactions for status transitions that touch
	// only the order and its attempt ledger (accept, decline, report, resolve).
	TransitionUoW interface {
		TxManager
		OrderRepoFactory
		AttemptRepoFactory
	}

	// TransitionUoWFactory creates TransitionUoW instances.
	TransitionUoWFactory interface {
		Create() TransitionUoW
	}

	// AssignUoW adds the delivery-worker repository for the assignment
	// transition's city-eligibility check.
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		AttemptRepoFactory
		DeliveryManRepoFactory
	}

	// AssignUoWFactory creates AssignUoW instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// DeliverUoW spans every repository the Delivered transition writes:
	// order status, attempt ledger, stock counters, and both balances.
	DeliverUoW interface {
		TxManager
		OrderRepoFactory
		AttemptRepoFactory
		ProductRepoFactory
		MerchantRepoFactory
		DeliveryManRepoFactory
	}

	// DeliverUoWFactory creates DeliverUoW instances.
	DeliverUoWFactory interface {
		Create() DeliverUoW
	}
)
