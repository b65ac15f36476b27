package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMenuQueryHandler retrieves available dishes from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query and returns available dishes sorted by id.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetMenuQueryResponse, 0)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			image,
			preparation_time,
			ingredients
		FROM menu_items
		WHERE available
		ORDER BY id
	`).Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}
