package ports

import (
	"context"

	"kitchen/internal/core/domain/model/user"
)

// UserRepository is the read-side contract for the household member directory.
// The order core never writes users; it resolves them to identify order
// owners and apply role policy.
type UserRepository interface {
	// Get retrieves a member by id.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByUsername retrieves a member by their login name.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
