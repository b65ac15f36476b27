package menurepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuItemRepository implements MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// Get retrieves a menu item by id.
func (r *GormMenuItemRepository) Get(ctx context.Context, id int64) (*menu.Item, error) {
	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("itemId", id)
		}
		return nil, err
	}

	return toDomain(dto), nil
}

// Add persists a new menu item and assigns the store-generated id.
func (r *GormMenuItemRepository) Add(ctx context.Context, item *menu.Item) error {
	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	item.ID = dto.ID
	return nil
}
