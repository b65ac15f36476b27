// Package user holds the household member read model. Members are managed
// outside the order core; the core only reads them to resolve order owners
// and apply role policy.
package user

import (
	"errors"
	"fmt"
)

// Role describes what a household member may do in the kitchen.
type Role string

const (
	// Member can browse the menu and place orders for themselves.
	Member Role = "member"

	// Chef runs the kitchen: sees every order and progresses statuses,
	// but does not place orders.
	Chef Role = "chef"

	// Admin combines the member and kitchen views.
	Admin Role = "admin"
)

// ErrInvalidRole is the sentinel error for role values outside the defined set.
var ErrInvalidRole = errors.New("role is not recognized")

// ParseRole converts an externally supplied string into a Role.
func ParseRole(value string) (Role, error) {
	switch r := Role(value); r {
	case Member, Chef, Admin:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, value)
	}
}

// CanPlaceOrders reports whether the role is allowed to place orders.
// Chefs cook; they do not order.
func (r Role) CanPlaceOrders() bool {
	return r == Member || r == Admin
}

// SeesAllOrders reports whether the role receives the kitchen-wide order view.
// Members only see their own orders.
func (r Role) SeesAllOrders() bool {
	return r == Chef || r == Admin
}

// User is a household member as stored in the user directory.
// Read-only to the order core.
type User struct {
	ID       int64
	Username string
	Name     string
	Role     Role
	Avatar   string
}
