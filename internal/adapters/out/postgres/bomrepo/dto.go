// Package bomrepo provides data transfer objects and mapping functions for
// bill of materials template persistence. Catalog templates and order-specific
// snapshots share the same tables; snapshots are distinguished by their sort
// order marker.
package bomrepo

import (
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/bom"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TemplateDTO represents the database structure for persisting BOM templates.
type TemplateDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Code          string    `gorm:"type:varchar(255);not null"`
	BaseQuantity  float64
	HidePrices    bool
	HideStructure bool
	SortOrder     int               `gorm:"not null;index"`
	Lines         []TemplateLineDTO `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for BOM template entities.
// Overrides GORM's default naming convention to use "bom_templates".
func (TemplateDTO) TableName() string {
	return "bom_templates"
}

// TemplateLineDTO represents the database structure for persisting template
// component lines.
type TemplateLineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TemplateID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Position    int       `gorm:"not null"`
	ComponentID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity    float64
}

// TableName specifies the database table name for template line entities.
// Overrides GORM's default naming convention to use "bom_template_lines".
func (TemplateLineDTO) TableName() string {
	return "bom_template_lines"
}

// fromDomain converts a BOM template domain entity to its database representation.
func fromDomain(template *bom.Template) TemplateDTO {
	templateID := template.ID().Bytes()
	domainLines := template.Lines()
	lines := make([]TemplateLineDTO, 0, len(domainLines))

	for i, line := range domainLines {
		lines = append(lines, TemplateLineDTO{
			ID:          uuid.New(),
			TemplateID:  templateID,
			Position:    i,
			ComponentID: line.ComponentID().Bytes(),
			Quantity:    line.Quantity(),
		})
	}

	return TemplateDTO{
		ID:            templateID,
		ProductID:     template.ProductID().Bytes(),
		Code:          template.Code(),
		BaseQuantity:  template.BaseQuantity(),
		HidePrices:    template.HidePrices(),
		HideStructure: template.HideStructure(),
		SortOrder:     template.SortOrder(),
		Lines:         lines,
	}
}

// toDomain converts a database DTO to a BOM template domain entity.
func toDomain(dto TemplateDTO) (*bom.Template, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]bom.TemplateLine, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		componentID, componentErr := kernel.UUIDFromBytes(lineDto.ComponentID[:])
		if componentErr != nil {
			return nil, componentErr
		}

		line, lineErr := bom.NewTemplateLine(componentID, false, lineDto.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return bom.RestoreTemplate(
		id,
		productID,
		dto.Code,
		dto.BaseQuantity,
		dto.HidePrices,
		dto.HideStructure,
		dto.SortOrder,
		lines,
	)
}
