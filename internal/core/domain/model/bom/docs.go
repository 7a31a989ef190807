// Package bom contains the Template aggregate: the reusable recipe that
// describes the standard composition of an assembly product.
//
// Templates are shared catalog data. Orders never mutate a shared template:
// when a confirmed order's composite line has drifted from its template, the
// confirmation flow clones the template through CloneWithOverrides into an
// order-specific snapshot and rebinds the line. The source is left untouched.
//
// The package enforces the no-nested-composite invariant at write time:
// a template line whose component product is itself a composite is a hard
// validation failure.
package bom
