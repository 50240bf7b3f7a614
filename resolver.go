package fieldlens

import (
	"strings"
	"time"
)

// Search modes reported on resolution signals.
const (
	modeHierarchy = "hierarchy"
	modeDeclared  = "declared"
)

// ResolveField locates the field named name on t, considering superclasses
// and implemented interfaces.
//
// The superclass chain is walked most-derived first: a public field declared
// at a level wins immediately, a non-public one wins immediately when
// ForceAccess() is given (its accessibility flag is opened), and is skipped
// otherwise so that a public field further up the chain may still match.
//
// If the chain yields nothing, the transitive interface set is searched
// exhaustively for a public field with the name. Interface fields are
// implicitly public and cannot be hidden by subclass rules, so the search
// must not short-circuit: a name declared on two or more unrelated
// interfaces fails with ErrAmbiguousMatch because its hierarchy position is
// undecidable.
//
// Fails with ErrInvalidArgument if t is nil or name is blank, and with
// ErrFieldNotFound if nothing matches.
func ResolveField(t Type, name string, opts ...Option) (Field, error) {
	cfg := applyOptions(opts)
	start := time.Now()
	f, err := lookupField(t, name, cfg.force)
	emitResolveComplete(modeHierarchy, typeName(t), name, time.Since(start), err)
	return f, err
}

// ResolveDeclaredField locates the field named name declared directly on t.
// No superclasses or interfaces are considered.
//
// Unlike ResolveField, this lookup is silent on visibility mismatches: a
// field that exists but is inaccessible without ForceAccess() yields
// ErrFieldNotFound rather than a distinct failure, since there is only ever
// at most one candidate.
func ResolveDeclaredField(t Type, name string, opts ...Option) (Field, error) {
	cfg := applyOptions(opts)
	start := time.Now()
	f, err := lookupDeclaredField(t, name, cfg.force)
	emitResolveComplete(modeDeclared, typeName(t), name, time.Since(start), err)
	return f, err
}

// lookupField implements the two-phase hierarchy search.
func lookupField(t Type, name string, force bool) (Field, error) {
	match, _, err := scanField(t, name, force)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, newLookupError(ErrFieldNotFound, t.Name(), name)
	}
	return match, nil
}

// scanField walks the hierarchy and interface set for name. It returns the
// resolved field, or, when nothing resolved, the most-derived candidate
// that was skipped for visibility (so facade operations can report a denial
// instead of a spurious not-found).
func scanField(t Type, name string, force bool) (match, blocked Field, err error) {
	if err := validateQuery(t, name); err != nil {
		return nil, nil, err
	}

	// Phase one: the superclass chain, most-derived first. Only fields
	// declared exactly at each level are consulted, so a non-public field
	// at a derived level cannot mask a public one above it unless forced.
	for _, level := range Superclasses(t) {
		f, ok := level.DeclaredField(name)
		if !ok {
			continue
		}
		if f.IsPublic() {
			return f, nil, nil
		}
		if force {
			forceAccessible(f)
			return f, nil, nil
		}
		// Non-public without force: keep walking upward.
		if blocked == nil {
			blocked = f
		}
	}

	// Phase two: the public interface case. Searched exhaustively, not
	// short-circuited, in case the same name exists on two or more
	// unrelated implemented interfaces.
	for _, iface := range AllInterfaces(t) {
		f, ok := iface.DeclaredField(name)
		if !ok || !f.IsPublic() {
			continue
		}
		if match != nil {
			return nil, nil, newLookupError(ErrAmbiguousMatch, t.Name(), name)
		}
		match = f
	}
	return match, blocked, nil
}

// resolveForAccess resolves like ResolveField but keeps the
// visibility-blocked candidate as the result when nothing else matched: the
// subsequent accessibility check then fails with ErrAccessDenied, which
// names the real problem. A truly absent field still fails ErrFieldNotFound.
func resolveForAccess(t Type, name string, force bool) (Field, error) {
	start := time.Now()
	match, blocked, err := scanField(t, name, force)
	if err == nil && match == nil {
		if blocked != nil {
			match = blocked
		} else {
			err = newLookupError(ErrFieldNotFound, typeName(t), name)
		}
	}
	emitResolveComplete(modeHierarchy, typeName(t), name, time.Since(start), err)
	return match, err
}

// lookupDeclaredField implements the single-level search.
func lookupDeclaredField(t Type, name string, force bool) (Field, error) {
	if err := validateQuery(t, name); err != nil {
		return nil, err
	}

	f, ok := t.DeclaredField(name)
	if !ok {
		return nil, newLookupError(ErrFieldNotFound, t.Name(), name)
	}
	if !fieldAccessible(f) {
		if !force {
			// Intentionally indistinguishable from a missing field.
			return nil, newLookupError(ErrFieldNotFound, t.Name(), name)
		}
		forceAccessible(f)
	}
	return f, nil
}

// validateQuery rejects nil types and blank field names.
func validateQuery(t Type, name string) error {
	if t == nil {
		return invalidArg("type must not be nil")
	}
	if strings.TrimSpace(name) == "" {
		return invalidArg("field name must not be blank")
	}
	return nil
}

// typeName is a nil-safe Name() for signal payloads.
func typeName(t Type) string {
	if t == nil {
		return ""
	}
	return t.Name()
}
