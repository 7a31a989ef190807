// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The line collection is stored in a child table and loaded with the order;
// the aggregate is never persisted partially.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference    string    `gorm:"type:varchar(64);not null;index"`
	CustomerName string    `gorm:"type:varchar(255);not null"`
	Currency     string    `gorm:"type:varchar(3);not null"`
	PlacedAt     time.Time `gorm:"not null"`
	Status       int
	Lines        []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents the database structure for persisting order lines.
// Position preserves document order across round trips. Subtotal, margin and
// margin percentage are derived columns written for the read side; the domain
// recomputes them on restore and never trusts the stored values.
type LineDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Position           int       `gorm:"not null"`
	ProductID          uuid.UUID `gorm:"type:uuid"`
	ProductIsComposite bool
	Description        string `gorm:"type:varchar(512);not null"`
	DisplayType        int
	Quantity           float64
	UnitPrice          decimal.Decimal `gorm:"type:numeric(14,4)"`
	UnitCost           decimal.Decimal `gorm:"type:numeric(14,4)"`
	DiscountPct        float64
	ParentLineID       *uuid.UUID `gorm:"type:uuid;index"`
	BomTemplateID      *uuid.UUID `gorm:"type:uuid;index"`
	HidePrices         bool
	HideStructure      bool
	Subtotal           decimal.Decimal `gorm:"type:numeric(14,4)"`
	Margin             decimal.Decimal `gorm:"type:numeric(14,4)"`
	MarginPct          float64
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
// Lines keep their document order via the Position column.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	domainLines := aggregate.Lines()
	lines := make([]LineDTO, 0, len(domainLines))

	for position, line := range domainLines {
		var parentLineID *uuid.UUID
		if id := line.ParentLineID(); id != nil {
			raw := id.Bytes()
			parentLineID = &raw
		}

		var bomTemplateID *uuid.UUID
		if id := line.BomTemplateID(); id != nil {
			raw := id.Bytes()
			bomTemplateID = &raw
		}

		lines = append(lines, LineDTO{
			ID:                 line.ID().Bytes(),
			OrderID:            orderID,
			Position:           position,
			ProductID:          line.ProductID().Bytes(),
			ProductIsComposite: line.IsComposite(),
			Description:        line.Description(),
			DisplayType:        int(line.DisplayType()),
			Quantity:           line.Quantity(),
			UnitPrice:          line.UnitPrice().Amount(),
			UnitCost:           line.UnitCost().Amount(),
			DiscountPct:        line.DiscountPct(),
			ParentLineID:       parentLineID,
			BomTemplateID:      bomTemplateID,
			HidePrices:         line.HidePrices(),
			HideStructure:      line.HideStructure(),
			Subtotal:           line.Subtotal().Amount(),
			Margin:             line.Margin().Amount(),
			MarginPct:          line.MarginPct(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		Reference:    aggregate.Reference(),
		CustomerName: aggregate.CustomerName(),
		Currency:     aggregate.Currency(),
		PlacedAt:     aggregate.PlacedAt(),
		Status:       int(aggregate.Status()),
		Lines:        lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all lines using RestoreOrder,
// which re-validates tree integrity and recomputes derived margins.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		dto.Reference,
		dto.CustomerName,
		dto.Currency,
		dto.PlacedAt,
		order.Status(dto.Status),
		lines,
	)
}

// lineToDomain converts a line DTO to the domain entity.
func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	displayType := order.DisplayType(dto.DisplayType)

	var productID kernel.UUID
	if !displayType.IsDisplay() {
		productID, err = kernel.UUIDFromBytes(dto.ProductID[:])
		if err != nil {
			return nil, err
		}
	}

	var parentLineID *kernel.UUID
	if dto.ParentLineID != nil {
		pID, parentErr := kernel.UUIDFromBytes((*dto.ParentLineID)[:])
		if parentErr != nil {
			return nil, parentErr
		}
		parentLineID = &pID
	}

	var bomTemplateID *kernel.UUID
	if dto.BomTemplateID != nil {
		bID, bomErr := kernel.UUIDFromBytes((*dto.BomTemplateID)[:])
		if bomErr != nil {
			return nil, bomErr
		}
		bomTemplateID = &bID
	}

	return order.RestoreLine(
		id,
		productID,
		dto.ProductIsComposite,
		dto.Description,
		displayType,
		dto.Quantity,
		kernel.NewMoney(dto.UnitPrice),
		kernel.NewMoney(dto.UnitCost),
		dto.DiscountPct,
		parentLineID,
		bomTemplateID,
		dto.HidePrices,
		dto.HideStructure,
	)
}
