package queries

import (
	"errors"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/guard"
)

var ErrGetCompositeConfigurationQueryIsNotConstructed = errors.New(
	"GetCompositeConfigurationQuery must be created via NewGetCompositeConfigurationQuery constructor",
)

// GetCompositeConfigurationQuery retrieves the current state of a composite
// line for the reconfiguration wizard: the line's own settings and the full
// component set with per-row pricing.
type GetCompositeConfigurationQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lineID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCompositeConfigurationQuery creates a query for a composite line's
// current configuration.
func NewGetCompositeConfigurationQuery(orderID, lineID kernel.UUID) (GetCompositeConfigurationQuery, error) {
	configurationQuery := GetCompositeConfigurationQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		configurationQuery.setOrderID(orderID),
		configurationQuery.setLineID(lineID),
	); err != nil {
		return GetCompositeConfigurationQuery{}, err
	}

	return configurationQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompositeConfigurationQuery) Validate() error {
	return q.guard.Validate(ErrGetCompositeConfigurationQueryIsNotConstructed)
}

// OrderID returns the identifier of the order holding the line.
func (q GetCompositeConfigurationQuery) OrderID() kernel.UUID {
	return q.orderID
}

// LineID returns the identifier of the composite line.
func (q GetCompositeConfigurationQuery) LineID() kernel.UUID {
	return q.lineID
}

func (q *GetCompositeConfigurationQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetCompositeConfigurationQuery) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	q.lineID = lineID
	return nil
}

// CompositeComponentResponse is one component row of the configuration.
type CompositeComponentResponse struct {
	LineID      kernel.UUID
	ProductID   kernel.UUID
	Description string
	Quantity    float64
	UnitPrice   kernel.Money
	UnitCost    kernel.Money
	DiscountPct float64
}

// GetCompositeConfigurationQueryResponse carries the composite line's
// settings and its component rows, ready to prefill the wizard.
type GetCompositeConfigurationQueryResponse struct {
	LineID        kernel.UUID
	ProductID     kernel.UUID
	Quantity      float64
	UnitPrice     kernel.Money
	HidePrices    bool
	HideStructure bool
	BomTemplateID *kernel.UUID
	Components    []CompositeComponentResponse
}
