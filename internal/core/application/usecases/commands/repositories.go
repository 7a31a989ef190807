// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/ports"
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

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BomTemplateRepoFactory provides access to BOM template repository within a transaction.
	BomTemplateRepoFactory interface {
		BomTemplateRepository() ports.BomTemplateRepository
	}

	// ProductRepoFactory provides access to the product catalog within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ExplosionUoW manages transactions for line creation with BOM
	// explosion: the order is written while templates and catalog products
	// are read within the same transaction.
	ExplosionUoW interface {
		TxManager
		OrderRepoFactory
		BomTemplateRepoFactory
		ProductRepoFactory
	}

	// ExplosionUoWFactory creates new explosion unit of work instances.
	ExplosionUoWFactory interface {
		Create() ExplosionUoW
	}

	// ConfirmationUoW manages transactions for order confirmation.
	// Drift inspection, snapshot creation and the status transition share
	// one transaction so a confirmed order always references frozen BOMs.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   bomRepo := uow.BomTemplateRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ConfirmationUoW interface {
		TxManager
		OrderRepoFactory
		BomTemplateRepoFactory
	}

	// ConfirmationUoWFactory creates new confirmation unit of work instances.
	ConfirmationUoWFactory interface {
		Create() ConfirmationUoW
	}

	// SnapshotPruningUoW manages transactions for snapshot maintenance.
	SnapshotPruningUoW interface {
		TxManager
		BomTemplateRepoFactory
	}

	// SnapshotPruningUoWFactory creates new snapshot pruning unit of work instances.
	SnapshotPruningUoWFactory interface {
		Create() SnapshotPruningUoW
	}
)
