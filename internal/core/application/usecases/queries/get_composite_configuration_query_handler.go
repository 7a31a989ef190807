package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCompositeConfigurationQueryHandler reads a composite line and its
// component rows for wizard prefill. Reads the line table directly; the
// wizard does not need the full aggregate.
type GetCompositeConfigurationQueryHandler struct {
	db *gorm.DB
}

// NewGetCompositeConfigurationQueryHandler creates a handler for
// configuration queries. Requires a GORM database connection.
func NewGetCompositeConfigurationQueryHandler(db *gorm.DB) GetCompositeConfigurationQueryHandler {
	return GetCompositeConfigurationQueryHandler{db: db}
}

// Handle executes the configuration query for one composite line.
func (h GetCompositeConfigurationQueryHandler) Handle(
	ctx context.Context,
	query GetCompositeConfigurationQuery,
) (GetCompositeConfigurationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCompositeConfigurationQueryResponse{}, err
	}

	response, err := h.loadComposite(ctx, query)
	if err != nil {
		return GetCompositeConfigurationQueryResponse{}, err
	}

	components, err := h.loadComponents(ctx, query)
	if err != nil {
		return GetCompositeConfigurationQueryResponse{}, err
	}
	response.Components = components

	return response, nil
}

func (h GetCompositeConfigurationQueryHandler) loadComposite(
	ctx context.Context,
	query GetCompositeConfigurationQuery,
) (GetCompositeConfigurationQueryResponse, error) {
	var productID uuid.UUID
	var bomTemplateID *uuid.UUID
	var quantity float64
	var unitPrice decimal.Decimal
	var hidePrices, hideStructure bool

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price,
			hide_prices,
			hide_structure,
			bom_template_id
		FROM order_lines
		WHERE id = ?
		  AND order_id = ?
		  AND product_is_composite
	`, query.LineID().Bytes(), query.OrderID().Bytes()).Row()

	err := row.Scan(&productID, &quantity, &unitPrice, &hidePrices, &hideStructure, &bomTemplateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCompositeConfigurationQueryResponse{},
				errs.NewObjectNotFoundError("composite line", query.LineID().String())
		}
		return GetCompositeConfigurationQueryResponse{}, err
	}

	productKernelID, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return GetCompositeConfigurationQueryResponse{}, err
	}

	var templateKernelID *kernel.UUID
	if bomTemplateID != nil {
		id, idErr := kernel.UUIDFromBytes((*bomTemplateID)[:])
		if idErr != nil {
			return GetCompositeConfigurationQueryResponse{}, idErr
		}
		templateKernelID = &id
	}

	return GetCompositeConfigurationQueryResponse{
		LineID:        query.LineID(),
		ProductID:     productKernelID,
		Quantity:      quantity,
		UnitPrice:     kernel.NewMoney(unitPrice),
		HidePrices:    hidePrices,
		HideStructure: hideStructure,
		BomTemplateID: templateKernelID,
	}, nil
}

func (h GetCompositeConfigurationQueryHandler) loadComponents(
	ctx context.Context,
	query GetCompositeConfigurationQuery,
) ([]CompositeComponentResponse, error) {
	components := make([]CompositeComponentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			description,
			quantity,
			unit_price,
			unit_cost,
			discount_pct
		FROM order_lines
		WHERE parent_line_id = ?
		ORDER BY position
	`, query.LineID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, productID uuid.UUID
		var description string
		var quantity, discountPct float64
		var unitPrice, unitCost decimal.Decimal

		if err = rows.Scan(&id, &productID, &description, &quantity, &unitPrice, &unitCost, &discountPct); err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		productKernelID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		components = append(components, CompositeComponentResponse{
			LineID:      lineID,
			ProductID:   productKernelID,
			Description: description,
			Quantity:    quantity,
			UnitPrice:   kernel.NewMoney(unitPrice),
			UnitCost:    kernel.NewMoney(unitCost),
			DiscountPct: discountPct,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return components, nil
}
