package fact

import (
	"errors"
	"strings"
	"testing"
)

func TestOutcomeTrueLeaf(t *testing.T) {
	if err := leafTrue("holds").Outcome(); err != nil {
		t.Fatalf("Outcome() = %v, want nil", err)
	}
}

func TestOutcomeFalseLeaf(t *testing.T) {
	cause := errCause("disk offline")
	f := False(Leaf{Message: "read %s failed", Args: []any{"a.txt"}, Cause: cause})

	err := f.Outcome()
	if err == nil {
		t.Fatal("Outcome() = nil, want assertion error")
	}

	var assertion *AssertionError
	if !errors.As(err, &assertion) {
		t.Fatalf("Outcome() = %T, want *AssertionError", err)
	}
	if assertion.Message != f.Message() {
		t.Fatalf("assertion message = %q, want %q", assertion.Message, f.Message())
	}
	if !strings.HasPrefix(assertion.Message, "false: ") {
		t.Fatalf("assertion message %q is missing the truth prefix", assertion.Message)
	}
	if !errors.Is(err, cause) {
		t.Fatal("assertion error does not wrap the cause")
	}
	if !strings.Contains(assertion.File, "outcome_test.go") {
		t.Fatalf("assertion file = %q, want the calling test file", assertion.File)
	}
	if assertion.Line <= 0 {
		t.Fatalf("assertion line = %d, want a positive line", assertion.Line)
	}
	if !strings.Contains(assertion.Error(), assertion.Message) {
		t.Fatalf("Error() = %q does not include the message", assertion.Error())
	}
}

func TestOutcomeComposite(t *testing.T) {
	a := leafTrue("a")
	b := leafFalse("b")

	tests := []struct {
		name string
		fact *Fact
	}{
		{name: "not", fact: a.Not()},
		{name: "and", fact: And(a, func() *Fact { return b })},
		{name: "or", fact: Or(b, func() *Fact { return a })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fact.Outcome()
			if !errors.Is(err, ErrCompositeFact) {
				t.Fatalf("Outcome() = %v, want ErrCompositeFact", err)
			}
		})
	}
}
