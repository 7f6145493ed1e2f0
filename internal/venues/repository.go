package venues

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository persists layouts. Lookups surface gorm.ErrRecordNotFound.
type Repository interface {
	Create(ctx context.Context, layout *VenueLayout) error
	GetByID(ctx context.Context, id uuid.UUID) (*VenueLayout, error)
	GetByCode(ctx context.Context, code string) (*VenueLayout, error)
	List(ctx context.Context, filters LayoutFilters) (*PaginatedLayouts, error)
	SaveDocument(ctx context.Context, id uuid.UUID, document []byte, stats LayoutStats) (*VenueLayout, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, layout *VenueLayout) error {
	return r.db.WithContext(ctx).Create(layout).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*VenueLayout, error) {
	var layout VenueLayout
	if err := r.db.WithContext(ctx).First(&layout, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &layout, nil
}

func (r *repository) GetByCode(ctx context.Context, code string) (*VenueLayout, error) {
	var layout VenueLayout
	if err := r.db.WithContext(ctx).First(&layout, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &layout, nil
}

// List never loads documents; the summary columns are enough for listings.
func (r *repository) List(ctx context.Context, filters LayoutFilters) (*PaginatedLayouts, error) {
	var layouts []VenueLayout
	var total int64

	query := r.db.WithContext(ctx).Model(&VenueLayout{})

	if filters.Search != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("name ILIKE ? OR code ILIKE ?", searchPattern, searchPattern)
	}
	if filters.LayoutType != "" {
		query = query.Where("layout_type = ?", filters.LayoutType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	// sort_by and sort_order are restricted by binding tags
	query = query.Order(fmt.Sprintf("%s %s", filters.SortBy, filters.SortOrder))

	offset := (filters.Page - 1) * filters.Limit
	err := query.
		Omit("document").
		Offset(offset).
		Limit(filters.Limit).
		Find(&layouts).Error
	if err != nil {
		return nil, err
	}

	items := make([]LayoutResponse, len(layouts))
	for i := range layouts {
		items[i] = layouts[i].ToResponse()
	}

	return &PaginatedLayouts{
		Layouts:    items,
		TotalCount: total,
		Page:       filters.Page,
		Limit:      filters.Limit,
		TotalPages: int((total + int64(filters.Limit) - 1) / int64(filters.Limit)),
	}, nil
}

// SaveDocument replaces the document and its derived columns and bumps the
// version in one statement.
func (r *repository) SaveDocument(ctx context.Context, id uuid.UUID, document []byte, stats LayoutStats) (*VenueLayout, error) {
	var layout VenueLayout
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&VenueLayout{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":              stats.Name,
			"code":              stats.Code,
			"document":          document,
			"total_capacity":    stats.TotalCapacity,
			"sellable_capacity": stats.SellableCapacity,
			"stand_count":       stats.StandCount,
			"version":           gorm.Expr("version + 1"),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&layout, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &layout, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&VenueLayout{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
