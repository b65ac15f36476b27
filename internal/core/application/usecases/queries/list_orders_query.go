// Package queries contains read-only operations against the database.
// Implements the Query pattern for the read side of the CQRS architecture.
// Queries bypass the domain model and read denormalized rows directly,
// so list views never trigger per-row reference lookups.
package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/user"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the order list for a household member.
// The caller's role decides the scope: chefs and admins see the whole
// kitchen queue, members only their own orders.
//
// Example:
//
//	query, err := NewListOrdersQuery("member", 3)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type ListOrdersQuery struct {
	role   user.Role
	userID int64

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the order list.
// The role must be one of the defined roles, and member-scoped queries
// must name the member whose orders are requested.
func NewListOrdersQuery(rawRole string, userID int64) (ListOrdersQuery, error) {
	role, err := user.ParseRole(rawRole)
	if err != nil {
		return ListOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("role", err)
	}
	if !role.SeesAllOrders() && userID <= 0 {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("userId")
	}

	return ListOrdersQuery{
		role:   role,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Role returns the caller's role.
func (q ListOrdersQuery) Role() user.Role { return q.role }

// UserID returns the member the query is scoped to. Zero when the role
// sees the whole queue.
func (q ListOrdersQuery) UserID() int64 { return q.userID }

// ListOrdersQueryResponse is an order row joined with display fields so
// clients can render the list without follow-up fetches.
type ListOrdersQueryResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ItemID    int64     `json:"item_id"`
	Quantity  int       `json:"quantity"`
	Note      string    `json:"note"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserName  string    `json:"user_name"`
	ItemName  string    `json:"item_name"`
	ItemImage string    `json:"item_image"`
}
