package commands

import (
	"errors"
	"fmt"

	"kitchen/internal/core/domain/model/user"
)

var (
	// ErrRolePolicyViolation is the sentinel error for actions a member's
	// role does not permit.
	ErrRolePolicyViolation = errors.New("role is not permitted to perform this action")

	// ErrMenuItemUnavailable is returned when the referenced menu item
	// exists but is currently not offered.
	ErrMenuItemUnavailable = errors.New("menu item is not available")
)

// RolePolicyViolationError reports which role attempted which forbidden action.
type RolePolicyViolationError struct {
	Role   user.Role
	Action string
}

func NewRolePolicyViolationError(role user.Role, action string) *RolePolicyViolationError {
	return &RolePolicyViolationError{Role: role, Action: action}
}

func (e *RolePolicyViolationError) Error() string {
	return fmt.Sprintf("%s: %s may not %s", ErrRolePolicyViolation, e.Role, e.Action)
}

func (e *RolePolicyViolationError) Unwrap() error {
	return ErrRolePolicyViolation
}
