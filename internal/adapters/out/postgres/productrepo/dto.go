// Package productrepo provides data transfer objects and mapping functions for
// catalog product persistence.
package productrepo

import (
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting catalog products.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null;index"`
	IsComposite  bool
	ListPrice    decimal.Decimal `gorm:"type:numeric(14,4)"`
	StandardCost decimal.Decimal `gorm:"type:numeric(14,4)"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain entity to its database representation.
func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID().Bytes(),
		Name:         p.Name(),
		IsComposite:  p.IsComposite(),
		ListPrice:    p.ListPrice().Amount(),
		StandardCost: p.StandardCost().Amount(),
	}
}

// toDomain converts a database DTO to a product domain entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.IsComposite,
		kernel.NewMoney(dto.ListPrice),
		kernel.NewMoney(dto.StandardCost),
	)
}
