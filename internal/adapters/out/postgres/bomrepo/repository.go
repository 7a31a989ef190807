package bomrepo

import (
	"context"
	"errors"

	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/bom"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/core/domain/model/kernel"
	"github.com/geoffrey-prelium/sale-ouvrage/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBomTemplateRepository implements BomTemplateRepository using GORM.
type GormBomTemplateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBomTemplateRepository creates a new GORM BOM template repository.
func NewGormBomTemplateRepository(db *gorm.DB, tracker aggregateTracker) *GormBomTemplateRepository {
	return &GormBomTemplateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new template with its component lines to the database.
func (r *GormBomTemplateRepository) Add(ctx context.Context, template *bom.Template) error {
	if err := template.Validate(); err != nil {
		return err
	}

	dto := fromDomain(template)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(template.ID(), template)
	return nil
}

// Get retrieves a template by ID with its component lines.
func (r *GormBomTemplateRepository) Get(ctx context.Context, id kernel.UUID) (*bom.Template, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TemplateDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bom template", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindDefaultForProduct retrieves the default template for a product, which is
// the one with the lowest sort order. Order-specific snapshots carry the
// snapshot sort order marker and therefore never win over a catalog template.
// The boolean result reports whether any template exists for the product.
func (r *GormBomTemplateRepository) FindDefaultForProduct(ctx context.Context, productID kernel.UUID) (*bom.Template, bool, error) {
	if err := productID.Validate(); err != nil {
		return nil, false, err
	}

	var dto TemplateDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("sort_order ASC").
		First(&dto, "product_id = ?", productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	template, err := toDomain(dto)
	if err != nil {
		return nil, false, err
	}

	return template, true, nil
}

// RemoveUnreferencedSnapshots deletes order-specific snapshots that no order
// line references anymore and returns the number of deleted templates.
// Catalog templates are never touched.
func (r *GormBomTemplateRepository) RemoveUnreferencedSnapshots(ctx context.Context) (int, error) {
	result := r.db.WithContext(ctx).
		Where("sort_order = ?", bom.SnapshotSortOrder).
		Where("id NOT IN (SELECT bom_template_id FROM order_lines WHERE bom_template_id IS NOT NULL)").
		Delete(&TemplateDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}
