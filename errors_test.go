package fieldlens

import (
	"errors"
	"testing"
)

func TestLookupError_Is(t *testing.T) {
	err := newLookupError(ErrFieldNotFound, "Widget", "size")

	if !errors.Is(err, ErrFieldNotFound) {
		t.Error("LookupError should unwrap to ErrFieldNotFound")
	}
	if errors.Is(err, ErrAmbiguousMatch) {
		t.Error("LookupError should not match ErrAmbiguousMatch")
	}
}

func TestLookupError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "full context",
			err:  newLookupError(ErrFieldNotFound, "Widget", "size"),
			want: `field not found: field "size" on type Widget`,
		},
		{
			name: "ambiguous",
			err:  newLookupError(ErrAmbiguousMatch, "Impl", "version"),
			want: `ambiguous match: field "version" on type Impl`,
		},
		{
			name: "field only",
			err:  &LookupError{Err: ErrFieldNotFound, Field: "size"},
			want: `field not found: field "size"`,
		},
		{
			name: "bare",
			err:  &LookupError{Err: ErrFieldNotFound},
			want: "field not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccessError_Is(t *testing.T) {
	err := newAccessError(ErrAccessDenied, "read", "secret", nil)

	if !errors.Is(err, ErrAccessDenied) {
		t.Error("AccessError should unwrap to ErrAccessDenied")
	}
	if errors.Is(err, ErrTypeMismatch) {
		t.Error("AccessError should not match ErrTypeMismatch")
	}
}

func TestAccessError_Message(t *testing.T) {
	cause := errors.New("value of type string is not assignable to int")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "no cause",
			err:  newAccessError(ErrAccessDenied, "read", "secret", nil),
			want: "access denied: read field secret",
		},
		{
			name: "with cause",
			err:  newAccessError(ErrTypeMismatch, "write", "size", cause),
			want: "type mismatch: write field size: value of type string is not assignable to int",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvalidArg(t *testing.T) {
	err := invalidArg("field name must not be blank")

	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("invalidArg should wrap ErrInvalidArgument")
	}
	want := "invalid argument: field name must not be blank"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
