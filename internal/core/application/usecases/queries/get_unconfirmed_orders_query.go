package queries

import (
	"errors"
	"time"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/guard"
)

var ErrGetUnconfirmedOrdersQueryIsNotConstructed = errors.New(
	"GetUnconfirmedOrdersQuery must be created via NewGetUnconfirmedOrdersQuery constructor",
)

// GetUnconfirmedOrdersQuery retrieves all orders still in Draft status.
// Used by back-office views to list quotations awaiting confirmation.
//
// Example:
//
//	query := NewGetUnconfirmedOrdersQuery()
//	handler := NewGetUnconfirmedOrdersQueryHandler(db)
//
//	drafts, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get draft orders: %w", err)
//	}
//	fmt.Printf("Found %d draft orders\n", len(drafts))
type GetUnconfirmedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnconfirmedOrdersQuery creates a query to retrieve draft orders.
// This is a parameterless query.
func NewGetUnconfirmedOrdersQuery() GetUnconfirmedOrdersQuery {
	return GetUnconfirmedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnconfirmedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnconfirmedOrdersQueryIsNotConstructed)
}

// GetUnconfirmedOrdersQueryResponse represents one draft order row.
type GetUnconfirmedOrdersQueryResponse struct {
	ID           kernel.UUID
	Reference    string
	CustomerName string
	PlacedAt     time.Time
}
