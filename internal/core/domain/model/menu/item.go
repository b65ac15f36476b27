// Package menu holds the menu catalog read model. The catalog is maintained
// outside the order core; the core reads it to check that a requested item
// exists and is currently available.
package menu

// Item is a dish on the household menu.
type Item struct {
	ID              int64
	Name            string
	Description     string
	Image           string
	PreparationTime int
	Available       bool
	Ingredients     string
}
