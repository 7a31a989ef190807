package queries

import (
	"errors"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/guard"
)

var ErrGetTemplatePreviewQueryIsNotConstructed = errors.New(
	"GetTemplatePreviewQuery must be created via NewGetTemplatePreviewQuery constructor",
)

// GetTemplatePreviewQuery retrieves the component rows a template would
// produce, joined with catalog names and prices. The wizard uses it to
// preview a reload before the destructive save.
type GetTemplatePreviewQuery struct { //nolint:recvcheck //using for validation
	templateID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTemplatePreviewQuery creates a query for one template's component
// preview.
func NewGetTemplatePreviewQuery(templateID kernel.UUID) (GetTemplatePreviewQuery, error) {
	previewQuery := GetTemplatePreviewQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := previewQuery.setTemplateID(templateID); err != nil {
		return GetTemplatePreviewQuery{}, err
	}

	return previewQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTemplatePreviewQuery) Validate() error {
	return q.guard.Validate(ErrGetTemplatePreviewQueryIsNotConstructed)
}

// TemplateID returns the identifier of the template to preview.
func (q GetTemplatePreviewQuery) TemplateID() kernel.UUID {
	return q.templateID
}

func (q *GetTemplatePreviewQuery) setTemplateID(templateID kernel.UUID) error {
	if err := templateID.Validate(); err != nil {
		return err
	}

	q.templateID = templateID
	return nil
}

// GetTemplatePreviewQueryResponse is one previewed component row: the
// catalog product, its display name and the per-recipe quantity.
type GetTemplatePreviewQueryResponse struct {
	ProductID    kernel.UUID
	Name         string
	Quantity     float64
	ListPrice    kernel.Money
	StandardCost kernel.Money
}
