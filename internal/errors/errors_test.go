package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewRegisteredCode(t *testing.T) {
	err := New(CodeUnsupportedShape)

	if err.Code != "E301" {
		t.Errorf("Code = %q, want E301", err.Code)
	}
	if err.Category != CategoryValidation {
		t.Errorf("Category = %q, want validation", err.Category)
	}
	if err.Message == "" {
		t.Error("Expected non-empty message from registry")
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")

	if err.Code != "E999" {
		t.Errorf("Code = %q, want E999", err.Code)
	}
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q, want Unknown error", err.Message)
	}
}

func TestErrorString(t *testing.T) {
	err := New(CodeBindingTornDown)
	want := "E302: Operation on a torn-down binding"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	uncoded := Newf(CategoryRuntime, "boom %d", 7)
	if uncoded.Error() != "boom 7" {
		t.Errorf("Error() = %q, want boom 7", uncoded.Error())
	}
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("inner failure")
	err := New(CodeConfigInvalid).Wrap(inner)

	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, CodeConfigInvalid) != nil {
		t.Error("FromError(nil) should be nil")
	}

	be := New(CodeConfigNotFound)
	if FromError(be, CodeConfigInvalid) != be {
		t.Error("FromError should pass through an existing BindError")
	}

	wrapped := FromError(fmt.Errorf("bad json"), CodeConfigInvalid)
	if wrapped.Code != CodeConfigInvalid {
		t.Errorf("Code = %q, want %q", wrapped.Code, CodeConfigInvalid)
	}
	if wrapped.Wrapped == nil {
		t.Error("Expected wrapped error to be retained")
	}
}

func TestIsCode(t *testing.T) {
	err := New(CodeUnsupportedShape)
	outer := fmt.Errorf("while configuring: %w", err)

	if !IsCode(outer, CodeUnsupportedShape) {
		t.Error("IsCode should match through wrapping")
	}
	if IsCode(outer, CodeBindingTornDown) {
		t.Error("IsCode matched the wrong code")
	}
	if IsCode(nil, CodeUnsupportedShape) {
		t.Error("IsCode(nil) should be false")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New(CodeUnsupportedShape).
		WithSuggestion("Supply a map[string]bool instead").
		Wrap(fmt.Errorf("got int"))

	out := err.Format()

	for _, want := range []string{
		"ERROR E301",
		"Unsupported class spec shape",
		"Caused by: got int",
		"Hint: Supply a map[string]bool instead",
		"Learn more:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup(CodeFrameMalformed); !ok {
		t.Error("Lookup should find registered codes")
	}
	if _, ok := Lookup("E000"); ok {
		t.Error("Lookup should not find unregistered codes")
	}
}
