package queries

import (
	"context"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetTemplatePreviewQueryHandler joins template lines with the product
// catalog to preview what a template reload would put on the order.
type GetTemplatePreviewQueryHandler struct {
	db *gorm.DB
}

// NewGetTemplatePreviewQueryHandler creates a handler for template previews.
// Requires a GORM database connection for query execution.
func NewGetTemplatePreviewQueryHandler(db *gorm.DB) GetTemplatePreviewQueryHandler {
	return GetTemplatePreviewQueryHandler{db: db}
}

// Handle executes the preview query.
// The per-recipe quantities come straight from the template lines; scaling
// them by the ordered quantity is the wizard's concern.
func (h GetTemplatePreviewQueryHandler) Handle(
	ctx context.Context,
	query GetTemplatePreviewQuery,
) ([]GetTemplatePreviewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	previews := make([]GetTemplatePreviewQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tl.component_id,
			p.name,
			tl.quantity,
			p.list_price,
			p.standard_cost
		FROM bom_template_lines tl
		JOIN products p ON p.id = tl.component_id
		WHERE tl.template_id = ?
		ORDER BY tl.position
	`, query.TemplateID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var componentID uuid.UUID
		var name string
		var quantity float64
		var listPrice, standardCost decimal.Decimal

		if err = rows.Scan(&componentID, &name, &quantity, &listPrice, &standardCost); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(componentID[:])
		if idErr != nil {
			return nil, idErr
		}

		previews = append(previews, GetTemplatePreviewQueryResponse{
			ProductID:    productID,
			Name:         name,
			Quantity:     quantity,
			ListPrice:    kernel.NewMoney(listPrice),
			StandardCost: kernel.NewMoney(standardCost),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return previews, nil
}
