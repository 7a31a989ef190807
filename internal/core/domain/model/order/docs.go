// Package order provides domain entities and business logic for sale-order
// management with composite ("ouvrage") lines. It implements the Order
// aggregate root, which owns the flat composition trees formed by composite
// lines and their component lines.
//
// The package includes:
//   - Order: The aggregate root owning the ordered collection of lines and
//     every tree operation (explosion, rescaling, cascade removal, margin
//     aggregation, totals filtering)
//   - Line: An order line entity; component-ness is a relationship (a parent
//     back-reference), not a distinct type
//   - Status: A state machine enforcing the Draft -> Confirmed transition
//
// Key business rules:
//   - A component line's parent is always a composite line of the same order
//   - Composition trees are flat: a component never has children of its own
//   - Removing a composite line cascades to its components
//   - Rescaling a composite line scales only its children's quantities,
//     preserving manual price overrides
//   - Composite lines never contribute to order-level taxable totals
//
// Derived values (per-line margin and margin percentage) are recomputed by
// the aggregate after every mutation through an explicit internal call, so
// a write never re-triggers itself.
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
