// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the composition engine. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DriftInspector: detects divergence between a composite line's actual
//     components and its BOM template
//   - TotalsCalculator: aggregates order-level totals with composite lines
//     excluded from the sums
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
