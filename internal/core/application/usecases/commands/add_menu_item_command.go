package commands

import (
	"errors"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// defaultPreparationTime is assumed when a dish is added without one.
const defaultPreparationTime = 30

// AddMenuItemCommand represents a request to add a dish to the household menu.
// New dishes are available immediately.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	name            string
	description     string
	image           string
	preparationTime int
	ingredients     string

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
// Name and image are required; description and ingredients are optional,
// and a missing preparation time falls back to defaultPreparationTime.
func NewAddMenuItemCommand(name, description, image string, preparationTime int, ingredients string) (AddMenuItemCommand, error) {
	if name == "" {
		return AddMenuItemCommand{}, errs.NewValueIsRequiredError("name")
	}
	if image == "" {
		return AddMenuItemCommand{}, errs.NewValueIsRequiredError("image")
	}
	if preparationTime <= 0 {
		preparationTime = defaultPreparationTime
	}

	return AddMenuItemCommand{
		name:            name,
		description:     description,
		image:           image,
		preparationTime: preparationTime,
		ingredients:     ingredients,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// Name returns the dish name.
func (c AddMenuItemCommand) Name() string { return c.name }

// Description returns the optional dish description.
func (c AddMenuItemCommand) Description() string { return c.description }

// Image returns the dish image URL.
func (c AddMenuItemCommand) Image() string { return c.image }

// PreparationTime returns the expected preparation time in minutes.
func (c AddMenuItemCommand) PreparationTime() int { return c.preparationTime }

// Ingredients returns the optional comma-separated ingredient list.
func (c AddMenuItemCommand) Ingredients() string { return c.ingredients }
