// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/docket/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "no content for subject",
			wantStr: "[NOT_FOUND] no content for subject",
		},
		{
			name:    "no_format_rule_error",
			code:    errors.ErrNoFormatRule,
			message: "no formatting rule applies",
			wantStr: "[NO_FORMAT_RULE] no formatting rule applies",
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

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrProviderNotFound, "provider %q is not registered", "struct")
	want := `[PROVIDER_NOT_FOUND] provider "struct" is not registered`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	t.Run("wraps underlying error", func(t *testing.T) {
		inner := stderrors.New("permission denied")
		err := errors.Wrap(inner, errors.ErrFileWrite, "cannot write HTML")

		if !stderrors.Is(err, inner) {
			t.Error("wrapped error should match with errors.Is")
		}
		want := "[FILE_WRITE] cannot write HTML: permission denied"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("nil error wraps to nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrFileWrite, "ignored"); err != nil {
			t.Errorf("Wrap(nil) = %v, want nil", err)
		}
	})
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrProviderConfig, "missing dependency")

	if !stderrors.Is(err, errors.New(errors.ErrProviderConfig, "other message")) {
		t.Error("errors with the same code should match")
	}
	if stderrors.Is(err, errors.New(errors.ErrNotFound, "missing dependency")) {
		t.Error("errors with different codes should not match")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Wrapf(stderrors.New("boom"), errors.ErrConfigParse, "bad config")

	if !errors.IsErrorCode(err, errors.ErrConfigParse) {
		t.Error("IsErrorCode should match the wrapping code")
	}
	if errors.IsErrorCode(err, errors.ErrConfigLoad) {
		t.Error("IsErrorCode should not match a different code")
	}
	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrConfigParse) {
		t.Error("plain errors carry no code")
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrDocParse, "x")); got != errors.ErrDocParse {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrDocParse)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileWrite, "cannot open file").
		WithDetail("path", "/tmp/out.html")

	if err.Details["path"] != "/tmp/out.html" {
		t.Errorf("Details[path] = %v, want /tmp/out.html", err.Details["path"])
	}
}
