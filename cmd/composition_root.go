package cmd

import (
	"github.com/geoffrey-prelium/sale-ouvrage/internal/adapters/out/postgres"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/adapters/out/postgres/orderrepo"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/adapters/out/tax"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/application/usecases/commands"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/application/usecases/queries"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/services"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	taxCalculator ports.TaxCalculator
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	taxCalculator, err := tax.NewFlatRateCalculator(config.TaxRatePct)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		taxCalculator: taxCalculator,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddOrderLineCommandHandler() commands.AddOrderLineCommandHandler {
	var f commands.ExplosionUoWFactory = FuncExplosionUoWFactory(func() commands.ExplosionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderLineCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveOrderLineCommandHandler() commands.RemoveOrderLineCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderLineCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateLineQuantityCommandHandler() commands.UpdateLineQuantityCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateLineQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateLinePricingCommandHandler() commands.UpdateLinePricingCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateLinePricingCommandHandler(f)
}

func (c *CompositionRoot) CreateConfigureCompositeCommandHandler() commands.ConfigureCompositeCommandHandler {
	var f commands.ExplosionUoWFactory = FuncExplosionUoWFactory(func() commands.ExplosionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfigureCompositeCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	var f commands.ConfirmationUoWFactory = FuncConfirmationUoWFactory(func() commands.ConfirmationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePruneSnapshotsCommandHandler() commands.PruneSnapshotsCommandHandler {
	var f commands.SnapshotPruningUoWFactory = FuncSnapshotPruningUoWFactory(func() commands.SnapshotPruningUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPruneSnapshotsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUnconfirmedOrdersQueryHandler() queries.GetUnconfirmedOrdersQueryHandler {
	return queries.NewGetUnconfirmedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderTotalsQueryHandler() queries.GetOrderTotalsQueryHandler {
	orders := orderrepo.NewGormOrderRepository(c.gormDB, readOnlyAggregateTracker{})
	return queries.NewGetOrderTotalsQueryHandler(orders, services.NewTotalsCalculator(c.taxCalculator))
}

// readOnlyAggregateTracker backs repositories used outside a unit of work.
// The totals query never writes, so tracked aggregates would go nowhere.
type readOnlyAggregateTracker struct{}

func (readOnlyAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

func (c *CompositionRoot) CreateGetCompositeConfigurationQueryHandler() queries.GetCompositeConfigurationQueryHandler {
	return queries.NewGetCompositeConfigurationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTemplatePreviewQueryHandler() queries.GetTemplatePreviewQueryHandler {
	return queries.NewGetTemplatePreviewQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncExplosionUoWFactory func() commands.ExplosionUoW

func (f FuncExplosionUoWFactory) Create() commands.ExplosionUoW {
	return f()
}

type FuncConfirmationUoWFactory func() commands.ConfirmationUoW

func (f FuncConfirmationUoWFactory) Create() commands.ConfirmationUoW {
	return f()
}

type FuncSnapshotPruningUoWFactory func() commands.SnapshotPruningUoW

func (f FuncSnapshotPruningUoWFactory) Create() commands.SnapshotPruningUoW {
	return f()
}
