package fieldlens

// Convenience operations combining resolution and access, for callers that
// hold an instance and a field name rather than a pre-resolved handle.
//
// Every operation validates the target up front: a nil Instance fails with
// ErrInvalidArgument, since instance-scoped lookups have no type to query.
// Resolution applies any requested force-access itself, so the subsequent
// read or write never forces again.

// ReadNamedField reads the field named name on target, resolving it through
// target's superclass chain and interfaces. A field that exists but is not
// accessible without ForceAccess() fails with ErrAccessDenied.
func ReadNamedField(target Instance, name string, opts ...Option) (any, error) {
	if target == nil {
		return nil, invalidArg("target instance must not be nil")
	}
	cfg := applyOptions(opts)
	f, err := resolveForAccess(target.TypeOf(), name, cfg.force)
	if err != nil {
		return nil, err
	}
	// Access was already forced during resolution; don't repeat it here.
	return ReadField(f, target)
}

// ReadDeclaredField reads the field named name declared directly on
// target's type. No hierarchy walk.
func ReadDeclaredField(target Instance, name string, opts ...Option) (any, error) {
	if target == nil {
		return nil, invalidArg("target instance must not be nil")
	}
	f, err := ResolveDeclaredField(target.TypeOf(), name, opts...)
	if err != nil {
		return nil, err
	}
	return ReadField(f, target)
}

// WriteNamedField writes value to the field named name on target, resolving
// it through target's superclass chain and interfaces. A field that exists
// but is not accessible without ForceAccess() fails with ErrAccessDenied.
func WriteNamedField(target Instance, name string, value any, opts ...Option) error {
	if target == nil {
		return invalidArg("target instance must not be nil")
	}
	cfg := applyOptions(opts)
	f, err := resolveForAccess(target.TypeOf(), name, cfg.force)
	if err != nil {
		return err
	}
	return WriteField(f, target, value)
}

// WriteDeclaredField writes value to the field named name declared directly
// on target's type.
func WriteDeclaredField(target Instance, name string, value any, opts ...Option) error {
	if target == nil {
		return invalidArg("target instance must not be nil")
	}
	f, err := ResolveDeclaredField(target.TypeOf(), name, opts...)
	if err != nil {
		return err
	}
	return WriteField(f, target, value)
}

// ReadStaticField reads the static field named name on t, resolving it
// through t's superclass chain and interfaces. Fails with
// ErrInvalidArgument if the resolved field is not static.
func ReadStaticField(t Type, name string, opts ...Option) (any, error) {
	f, err := ResolveField(t, name, opts...)
	if err != nil {
		return nil, err
	}
	if !f.IsStatic() {
		return nil, invalidArg("field %q on type %s is not static", name, t.Name())
	}
	return ReadField(f, nil)
}

// WriteStaticField writes value to the static field named name on t. Fails
// with ErrInvalidArgument if the resolved field is not static.
func WriteStaticField(t Type, name string, value any, opts ...Option) error {
	f, err := ResolveField(t, name, opts...)
	if err != nil {
		return err
	}
	if !f.IsStatic() {
		return invalidArg("field %q on type %s is not static", name, t.Name())
	}
	return WriteField(f, nil, value)
}
