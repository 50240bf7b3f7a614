// Package fieldlens provides hierarchy-aware reflective field access.
//
// Given a runtime type descriptor and a field name, the package locates the
// matching field across the type's superclass chain and implemented
// interfaces, optionally overrides normal accessibility restrictions, and
// performs type-safe reads and writes against instances.
//
// # Descriptors
//
// The package operates on three opaque handles supplied by a host runtime:
//
//   - Type: a runtime type with declared fields, an optional superclass,
//     and a set of directly implemented interfaces.
//   - Field: one declared field of exactly one Type, carrying modifiers
//     and a mutable accessibility flag.
//   - Instance: a runtime object used as the target of a read or write.
//
// Two host implementations ship with the module:
//
//   - classmodel: a registrable in-process class model with full hierarchy
//     semantics (non-public fields, interface constants, statics, finals).
//   - structmodel: an adapter over native Go structs, where exported fields
//     form the public surface and an embedded struct acts as the superclass.
//
// # Resolution
//
// Resolution walks the superclass chain most-derived first, then falls back
// to an exhaustive search of the transitive interface set:
//
//	base := classmodel.NewClass("Account")
//	derived := classmodel.NewClass("SavingsAccount", classmodel.Extends(base))
//
//	f, err := fieldlens.ResolveField(derived, "balance")
//
// # Force access
//
// Non-public fields are skipped by default. Passing ForceAccess() breaks
// scope restrictions by flipping the field's accessibility flag open. This
// can allow fields to be changed that shouldn't be; use it with care.
//
//	v, err := fieldlens.ReadNamedField(obj, "secret", fieldlens.ForceAccess())
//
// The flag is global per descriptor and only ever transitions from closed
// to open, so repeated forcing is idempotent and safe under concurrent use.
//
// # Errors
//
// All failures are typed and checkable with errors.Is: ErrInvalidArgument,
// ErrFieldNotFound, ErrAmbiguousMatch, ErrAccessDenied, ErrTypeMismatch,
// and ErrImmutableField.
package fieldlens

import "reflect"

// Type describes a runtime type: its declared fields, its direct
// superclass, and its directly implemented interfaces.
//
// Implementations must be comparable (the resolver deduplicates interface
// sets by descriptor identity); pointer receivers satisfy this naturally.
type Type interface {
	// Name returns the type's name, used in error messages and signals.
	Name() string

	// DeclaredField returns the field declared directly on this type with
	// the given name. Inherited fields are not considered.
	DeclaredField(name string) (Field, bool)

	// DeclaredFields returns every field declared directly on this type.
	DeclaredFields() []Field

	// Superclass returns the direct superclass, or nil if there is none.
	Superclass() Type

	// Interfaces returns the directly implemented interfaces in
	// declaration order.
	Interfaces() []Type
}

// Field is a handle to one declared field of exactly one Type. Its identity
// is the pair (declaring type, name): two descriptors from different
// declaring types are always distinct even when same-named.
//
// Get and Set are raw storage operations supplied by the host; they assume
// accessibility and assignability checks have already run. Use ReadField
// and WriteField for policy-checked access.
type Field interface {
	// Name returns the field name.
	Name() string

	// DeclaringType returns the type that declares this field.
	DeclaringType() Type

	// Type returns the declared value type of the field.
	Type() reflect.Type

	// IsPublic reports whether the field is publicly visible.
	IsPublic() bool

	// IsStatic reports whether the field belongs to the type rather than
	// to instances.
	IsStatic() bool

	// IsFinal reports whether the field is immutable after initialization.
	IsFinal() bool

	// Accessible reports whether the accessibility flag has been opened.
	Accessible() bool

	// SetAccessible opens the accessibility flag. The transition is
	// monotonic (closed to open, never back) and must be idempotent and
	// safe for concurrent use.
	SetAccessible()

	// Get returns the field's current value on target. Static fields
	// ignore the target.
	Get(target Instance) (any, error)

	// Set mutates the field's storage on target (or the type's static
	// storage). Static fields ignore the target.
	Set(target Instance, value any) error
}

// Instance is an opaque runtime object reference used as the target of a
// read or write. A nil Instance is the absence sentinel used for static
// field access.
type Instance interface {
	// TypeOf returns the instance's runtime type.
	TypeOf() Type
}

// Option configures a resolution or access operation.
type Option func(*accessConfig)

// accessConfig holds per-call settings.
type accessConfig struct {
	force bool
}

// ForceAccess breaks scope restrictions: non-public fields are matched and
// their accessibility flag is opened before access. Without it only public
// fields match.
func ForceAccess() Option {
	return func(c *accessConfig) {
		c.force = true
	}
}

func applyOptions(opts []Option) accessConfig {
	var cfg accessConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
