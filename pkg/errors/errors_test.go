package errors

import (
	"errors"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	inner := &ParseError{Field: "path", Got: "wobble"}
	err := &Error{Op: "timeline.Parse", Kind: KindParsing, Err: inner}

	want := `timeline.Parse [parsing]: failed to parse path: got "wobble"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestUnwrap(t *testing.T) {
	inner := &ParseError{Field: "repeat", Got: -1}
	err := &Error{Op: "timeline.Load", Kind: KindParsing, Err: inner}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatal("errors.As failed to find ParseError")
	}
	if pe.Field != "repeat" {
		t.Errorf("Field = %q, want %q", pe.Field, "repeat")
	}
}

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindParsing, "parsing"},
		{KindConfig, "config"},
		{Kind(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.kind, got, c.want)
		}
	}
}
