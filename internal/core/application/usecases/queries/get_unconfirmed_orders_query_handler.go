package queries

import (
	"context"
	"time"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnconfirmedOrdersQueryHandler retrieves draft orders from the database.
//
// Example:
//
//	handler := NewGetUnconfirmedOrdersQueryHandler(db)
//	query := NewGetUnconfirmedOrdersQuery()
//
//	drafts, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get draft orders: %v", err)
//	    return err
//	}
type GetUnconfirmedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnconfirmedOrdersQueryHandler creates a handler for draft order queries.
// Requires a GORM database connection for query execution.
func NewGetUnconfirmedOrdersQueryHandler(db *gorm.DB) GetUnconfirmedOrdersQueryHandler {
	return GetUnconfirmedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all draft orders.
// Results are sorted by reference for consistent output.
func (h GetUnconfirmedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnconfirmedOrdersQuery,
) ([]GetUnconfirmedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnconfirmedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reference,
			customer_name,
			placed_at
		FROM orders
		WHERE status = ?
		ORDER BY reference
	`, order.Draft).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var reference, customerName string
		var placedAt time.Time

		if err = rows.Scan(&id, &reference, &customerName, &placedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetUnconfirmedOrdersQueryResponse{
			ID:           orderID,
			Reference:    reference,
			CustomerName: customerName,
			PlacedAt:     placedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
