package queries

import (
	"context"
	"database/sql"
	"errors"

	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserByUsernameQueryHandler resolves a username to a household member.
type GetUserByUsernameQueryHandler struct {
	db *gorm.DB
}

// NewGetUserByUsernameQueryHandler creates a handler for username lookups.
func NewGetUserByUsernameQueryHandler(db *gorm.DB) GetUserByUsernameQueryHandler {
	return GetUserByUsernameQueryHandler{db: db}
}

// Handle executes the lookup. Returns an object-not-found error when no
// member uses the username.
func (h GetUserByUsernameQueryHandler) Handle(
	ctx context.Context,
	query GetUserByUsernameQuery,
) (GetUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUsersQueryResponse{}, err
	}

	var userResp GetUsersQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			name,
			role,
			avatar
		FROM users
		WHERE username = ?
	`, query.Username()).Row()

	err := row.Scan(
		&userResp.ID,
		&userResp.Username,
		&userResp.Name,
		&userResp.Role,
		&userResp.Avatar,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetUsersQueryResponse{}, errs.NewObjectNotFoundError("username", query.Username())
	}
	if err != nil {
		return GetUsersQueryResponse{}, err
	}

	return userResp, nil
}
