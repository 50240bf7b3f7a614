package fieldlens

import (
	"reflect"
	"sync/atomic"
)

// Hand-rolled descriptor stubs so the core algorithms are tested without
// depending on a host package.

var anyType = reflect.TypeOf((*any)(nil)).Elem()

type stubType struct {
	name   string
	super  *stubType
	ifaces []*stubType
	order  []string
	fields map[string]*stubField
}

func newStubType(name string, super *stubType, ifaces ...*stubType) *stubType {
	return &stubType{
		name:   name,
		super:  super,
		ifaces: ifaces,
		fields: make(map[string]*stubField),
	}
}

// declare attaches f to t. A missing field type defaults to the value's
// type, or to any when there is no value either.
func (t *stubType) declare(f *stubField) *stubField {
	f.owner = t
	if f.typ == nil {
		if f.value != nil {
			f.typ = reflect.TypeOf(f.value)
		} else {
			f.typ = anyType
		}
	}
	t.order = append(t.order, f.name)
	t.fields[f.name] = f
	return f
}

func (t *stubType) Name() string { return t.name }

func (t *stubType) DeclaredField(name string) (Field, bool) {
	f, ok := t.fields[name]
	if !ok {
		return nil, false
	}
	return f, true
}

func (t *stubType) DeclaredFields() []Field {
	out := make([]Field, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.fields[name])
	}
	return out
}

func (t *stubType) Superclass() Type {
	if t.super == nil {
		return nil
	}
	return t.super
}

func (t *stubType) Interfaces() []Type {
	out := make([]Type, len(t.ifaces))
	for i, it := range t.ifaces {
		out[i] = it
	}
	return out
}

type stubField struct {
	name   string
	owner  *stubType
	typ    reflect.Type
	public bool
	static bool
	final  bool
	open   atomic.Bool

	value  any
	getErr error
	setErr error
}

func (f *stubField) Name() string        { return f.name }
func (f *stubField) DeclaringType() Type { return f.owner }
func (f *stubField) Type() reflect.Type  { return f.typ }
func (f *stubField) IsPublic() bool      { return f.public }
func (f *stubField) IsStatic() bool      { return f.static }
func (f *stubField) IsFinal() bool       { return f.final }
func (f *stubField) Accessible() bool    { return f.open.Load() }
func (f *stubField) SetAccessible()      { f.open.Store(true) }

func (f *stubField) Get(Instance) (any, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.value, nil
}

func (f *stubField) Set(_ Instance, value any) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.value = value
	return nil
}

type stubInstance struct {
	t *stubType
}

func (i *stubInstance) TypeOf() Type { return i.t }

var (
	_ Type     = (*stubType)(nil)
	_ Field    = (*stubField)(nil)
	_ Instance = (*stubInstance)(nil)
)
