// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/tagscrub/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_pattern_error",
			code:    errors.ErrInvalidPattern,
			message: "pattern does not compile",
			wantStr: "[INVALID_PATTERN] pattern does not compile",
		},
		{
			name:    "unknown_ruleset_error",
			code:    errors.ErrUnknownRuleSet,
			message: "no such rule set",
			wantStr: "[RULESET_UNKNOWN] no such rule set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("wraps_and_unwraps", func(t *testing.T) {
		inner := stderrors.New("boom")
		err := errors.Wrap(inner, errors.ErrConfigParse, "failed to parse config")

		if !stderrors.Is(err, inner) {
			t.Error("wrapped error should match errors.Is on the inner error")
		}
		if got := err.Error(); got != "[CONFIG_PARSE] failed to parse config: boom" {
			t.Errorf("Error() = %q", got)
		}
	})

	t.Run("nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "nothing"); err != nil {
			t.Errorf("Wrap(nil) = %v, want nil", err)
		}
	})
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrInvalidPattern, "bad pattern")

	if !stderrors.Is(err, errors.New(errors.ErrInvalidPattern, "other message")) {
		t.Error("errors with the same code should match")
	}
	if stderrors.Is(err, errors.New(errors.ErrConfigLoad, "bad pattern")) {
		t.Error("errors with different codes should not match")
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInvalidPattern, "bad pattern").
		WithDetail("pattern", "([")

	details := errors.GetErrorDetails(err)
	if details["pattern"] != "([" {
		t.Errorf("details[pattern] = %v, want ([", details["pattern"])
	}
}

func TestCodeHelpers(t *testing.T) {
	err := errors.Newf(errors.ErrUnknownRuleSet, "unknown rule set %q", "nope")

	if !errors.IsErrorCode(err, errors.ErrUnknownRuleSet) {
		t.Error("IsErrorCode should match the error's code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrUnknownRuleSet) {
		t.Error("IsErrorCode should not match a plain error")
	}
	if got := errors.GetErrorCode(err); got != errors.ErrUnknownRuleSet {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want ErrUnknown", got)
	}
}
