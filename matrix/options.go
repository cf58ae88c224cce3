// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal) that resolves them.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts construction and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.
//
// Notes:
//   - Storage order and storage kind are construction-time decisions. A Matrix
//     never changes its order afterwards; re-permuting data is not supported.
//   - The elementwise backend (opmode) is a build-time choice, not an Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrder is the storage order used when no order option is given.
	DefaultOrder = RowMajor

	// DefaultDynamic selects Dynamic (resizable) storage. false ⇒ Fixed storage,
	// which rejects structural edits with ErrStaticShape.
	DefaultDynamic = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicOrderInvalid = "matrix: WithOrder: unknown storage order"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	order   Order // DefaultOrder
	dynamic bool  // DefaultDynamic
}

// Order returns the resolved storage order.
func (o Options) Order() Order { return o.order }

// Dynamic reports whether resizable storage was requested.
func (o Options) Dynamic() bool { return o.dynamic }

// WithOrder sets the storage order explicitly.
// Panics when ord is neither RowMajor nor ColMajor (programmer error).
// Complexity: O(1).
func WithOrder(ord Order) Option {
	if !ord.valid() {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.order = ord }
}

// WithRowMajor stores rows contiguously (the default).
func WithRowMajor() Option { return WithOrder(RowMajor) }

// WithColMajor stores columns contiguously.
func WithColMajor() Option { return WithOrder(ColMajor) }

// WithFixed allocates Fixed storage: dimensions are set once and never change.
// Structural edits, Resize and Reshape fail with ErrStaticShape.
func WithFixed() Option {
	return func(o *Options) { o.dynamic = false }
}

// WithStatic is an alias of WithFixed.
func WithStatic() Option { return WithFixed() }

// WithDynamic allocates Dynamic storage (the default).
func WithDynamic() Option {
	return func(o *Options) { o.dynamic = true }
}

// NewOptions resolves option setters against the documented defaults.
// Last-writer-wins. Complexity: O(k) for k setters.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of the defaults.
// This is the canonical internal entry used by every constructor.
func gatherOptions(user ...Option) Options {
	o := Options{
		order:   DefaultOrder,
		dynamic: DefaultDynamic,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
