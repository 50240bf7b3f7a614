package fieldlens_test

import (
	"errors"
	"testing"

	"github.com/zoobzio/fieldlens"
	"github.com/zoobzio/fieldlens/classmodel"
	"github.com/zoobzio/fieldlens/lenstest"
)

// End-to-end scenarios against the class-model host.

func TestEndToEnd_InheritedPrivateField(t *testing.T) {
	h := lenstest.NewHierarchy()
	obj := h.Derived.New()

	secret, err := fieldlens.ResolveField(h.Derived, "secret", fieldlens.ForceAccess())
	if err != nil {
		t.Fatalf("ResolveField(force) error = %v", err)
	}
	if err := fieldlens.WriteField(secret, obj, 42); err != nil {
		t.Fatalf("WriteField() error = %v", err)
	}

	// A fresh hierarchy so the descriptor's flag starts closed.
	fresh := lenstest.NewHierarchy()
	freshObj := fresh.Derived.New()
	if _, err := fieldlens.ReadNamedField(freshObj, "secret"); !errors.Is(err, fieldlens.ErrAccessDenied) {
		t.Fatalf("ReadNamedField() error = %v, want ErrAccessDenied", err)
	}

	got, err := fieldlens.ReadNamedField(obj, "secret", fieldlens.ForceAccess())
	if err != nil {
		t.Fatalf("ReadNamedField(force) error = %v", err)
	}
	if got != 42 {
		t.Errorf("ReadNamedField(force) = %v, want 42", got)
	}
}

func TestEndToEnd_ShadowedField(t *testing.T) {
	h := lenstest.NewHierarchy()

	f, err := fieldlens.ResolveField(h.Derived, "label")
	if err != nil {
		t.Fatalf("ResolveField() error = %v", err)
	}
	if f.DeclaringType() != fieldlens.Type(h.Derived) {
		t.Errorf("label declared by %s, want Derived", f.DeclaringType().Name())
	}

	// Forced resolution also returns the derived declaration: it is
	// public and most derived.
	f, err = fieldlens.ResolveField(h.Derived, "label", fieldlens.ForceAccess())
	if err != nil {
		t.Fatalf("ResolveField(force) error = %v", err)
	}
	if f.DeclaringType() != fieldlens.Type(h.Derived) {
		t.Errorf("forced label declared by %s, want Derived", f.DeclaringType().Name())
	}
}

func TestEndToEnd_AmbiguousInterfaces(t *testing.T) {
	a := lenstest.NewAmbiguous()

	_, err := fieldlens.ResolveField(a.Impl, "version")
	if !errors.Is(err, fieldlens.ErrAmbiguousMatch) {
		t.Fatalf("ResolveField() error = %v, want ErrAmbiguousMatch", err)
	}
}

func TestEndToEnd_DiamondInterfaces(t *testing.T) {
	d := lenstest.NewDiamond()

	f, err := fieldlens.ResolveField(d.Impl, "origin")
	if err != nil {
		t.Fatalf("ResolveField() error = %v", err)
	}
	got, err := fieldlens.ReadField(f, nil)
	if err != nil {
		t.Fatalf("ReadField() error = %v", err)
	}
	if got != "root" {
		t.Errorf("origin = %v, want root", got)
	}
}

func TestEndToEnd_StaticField(t *testing.T) {
	h := lenstest.NewHierarchy()

	if err := fieldlens.WriteStaticField(h.Derived, "count", 11); err != nil {
		t.Fatalf("WriteStaticField() error = %v", err)
	}
	got, err := fieldlens.ReadStaticField(h.Base, "count")
	if err != nil {
		t.Fatalf("ReadStaticField() error = %v", err)
	}
	if got != 11 {
		t.Errorf("count = %v, want 11 (static storage is shared up the chain)", got)
	}
}

func TestEndToEnd_FinalField(t *testing.T) {
	h := lenstest.NewHierarchy()
	obj := h.Derived.New()

	err := fieldlens.WriteNamedField(obj, "kind", "other")
	if !errors.Is(err, fieldlens.ErrImmutableField) {
		t.Fatalf("WriteNamedField() error = %v, want ErrImmutableField", err)
	}
}

func TestEndToEnd_RoundTrip(t *testing.T) {
	h := lenstest.NewHierarchy()
	obj := h.Derived.New()

	if err := fieldlens.WriteNamedField(obj, "id", "abc-123"); err != nil {
		t.Fatalf("WriteNamedField() error = %v", err)
	}
	got, err := fieldlens.ReadNamedField(obj, "id")
	if err != nil {
		t.Fatalf("ReadNamedField() error = %v", err)
	}
	if got != "abc-123" {
		t.Errorf("round trip = %v, want abc-123", got)
	}
}

func TestEndToEnd_TypeMismatch(t *testing.T) {
	h := lenstest.NewHierarchy()
	obj := h.Derived.New()

	err := fieldlens.WriteNamedField(obj, "id", 99)
	if !errors.Is(err, fieldlens.ErrTypeMismatch) {
		t.Fatalf("WriteNamedField() error = %v, want ErrTypeMismatch", err)
	}
}

func TestEndToEnd_RegistryLookup(t *testing.T) {
	classmodel.Reset()
	defer classmodel.Reset()

	h := lenstest.NewHierarchy()
	if err := classmodel.Register(h.Derived); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	c, ok := classmodel.Lookup("Derived")
	if !ok {
		t.Fatal("Lookup() missed a registered class")
	}
	if _, err := fieldlens.ResolveField(c, "id"); err != nil {
		t.Errorf("ResolveField() on looked-up class error = %v", err)
	}
}

func TestEndToEnd_ConcurrentForcedReads(t *testing.T) {
	h := lenstest.NewHierarchy()
	obj := h.Derived.New()

	f, err := fieldlens.ResolveField(h.Derived, "secret", fieldlens.ForceAccess())
	if err != nil {
		t.Fatalf("ResolveField(force) error = %v", err)
	}
	if err := fieldlens.WriteField(f, obj, 5); err != nil {
		t.Fatalf("WriteField() error = %v", err)
	}

	// Forcing the same descriptor from many goroutines is a benign race:
	// the flag only ever transitions closed to open.
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := fieldlens.ReadNamedField(obj, "secret", fieldlens.ForceAccess())
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Errorf("concurrent forced read error = %v", err)
		}
	}
}
