package queries

import (
	"errors"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrGetUserByUsernameQueryIsNotConstructed = errors.New(
	"GetUserByUsernameQuery must be created via NewGetUserByUsernameQuery constructor",
)

// GetUserByUsernameQuery looks up a household member by username.
// Backs the login endpoint: the household trusts itself, so picking a
// username is the whole ceremony.
type GetUserByUsernameQuery struct {
	username string

	guard guard.ConstructorGuard
}

// NewGetUserByUsernameQuery creates a lookup query for the given username.
func NewGetUserByUsernameQuery(username string) (GetUserByUsernameQuery, error) {
	if username == "" {
		return GetUserByUsernameQuery{}, errs.NewValueIsRequiredError("username")
	}

	return GetUserByUsernameQuery{
		username: username,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByUsernameQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByUsernameQueryIsNotConstructed)
}

// Username returns the username to look up.
func (q GetUserByUsernameQuery) Username() string { return q.username }
