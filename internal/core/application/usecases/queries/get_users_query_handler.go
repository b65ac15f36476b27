package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUsersQueryHandler retrieves the household members from the database.
type GetUsersQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersQueryHandler creates a handler for user directory queries.
func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

// Handle executes the query and returns all household members sorted by id.
func (h GetUsersQueryHandler) Handle(
	ctx context.Context,
	query GetUsersQuery,
) ([]GetUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users := make([]GetUsersQueryResponse, 0)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			name,
			role,
			avatar
		FROM users
		ORDER BY id
	`).Scan(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}
