package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"testpilot/internal/domain"
)

func TestDescribeFailure(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: extension \".go\"", domain.ErrUnsupportedLanguage), "cannot analyze"},
		{fmt.Errorf("%w: calc.py", domain.ErrInputNotFound), "analysis failed"},
		{fmt.Errorf("%w: calc.py", domain.ErrInputUnreadable), "analysis failed"},
		{fmt.Errorf("%w: boom", domain.ErrRenderFailed), "generation failed"},
		{fmt.Errorf("%w: disk full", domain.ErrWriteFailed), "generation failed"},
	}

	for _, c := range cases {
		got := describeFailure("calc.py", c.err)
		if got == nil {
			t.Errorf("describeFailure(%v) returned nil", c.err)
			continue
		}
		if !strings.Contains(got.Error(), c.want) {
			t.Errorf("describeFailure(%v) = %q, want prefix naming %q", c.err, got, c.want)
		}
		if !errors.Is(got, errors.Unwrap(c.err)) && !errors.Is(got, c.err) {
			t.Errorf("describeFailure must preserve the sentinel for %v", c.err)
		}
	}
}

func TestDescribeFailure_Passthrough(t *testing.T) {
	plain := errors.New("unexpected")
	if got := describeFailure("x.py", plain); got != plain {
		t.Errorf("unknown errors must pass through unchanged, got %v", got)
	}
}
