// Package order provides domain entities and business logic for order management
// in the family kitchen system. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must reference an existing member and menu item with quantity >= 1
//   - Order status follows a defined workflow: pending -> preparing -> completed,
//     with cancellation allowed from pending and preparing
//   - completed and cancelled are terminal; orders are never deleted
//   - Only status and the update timestamp change after creation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
