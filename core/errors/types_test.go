package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "goodlinks export",
		ID:       "goodlinks.json",
	}

	expected := "goodlinks export not found: goodlinks.json"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "cache.type",
		Message: "must be 'sqlite' or 'memory'",
	}

	expected := "validation error on field 'cache.type': must be 'sqlite' or 'memory'"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{
		StatusCode: 503,
		Message:    "service unavailable",
		API:        "example.org",
	}

	expected := "external API error from example.org: 503 - service unavailable"
	if err.Error() != expected {
		t.Errorf("ExternalAPIError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestDuplicateKeyError_Error(t *testing.T) {
	err := &DuplicateKeyError{Table: "cache", Key: "https://a.com"}

	expected := "duplicate key in cache: https://a.com"
	if err.Error() != expected {
		t.Errorf("DuplicateKeyError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestScrapeError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ScrapeError{URL: "https://a.com", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("ScrapeError should unwrap to its cause")
	}

	expected := "failed to parse link https://a.com: connection refused"
	if err.Error() != expected {
		t.Errorf("ScrapeError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestCorruptRecordError_Unwrap(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &CorruptRecordError{Table: "cache", Key: "https://a.com", Field: "tags", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("CorruptRecordError should unwrap to its cause")
	}
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found", &NotFoundError{Resource: "vault", ID: "/notes"}, IsNotFound, true},
		{"not found other", errors.New("x"), IsNotFound, false},
		{"validation", &ValidationError{Field: "f", Message: "m"}, IsValidation, true},
		{"validation other", errors.New("x"), IsValidation, false},
		{"external api", &ExternalAPIError{StatusCode: 500}, IsExternalAPI, true},
		{"external api other", errors.New("x"), IsExternalAPI, false},
		{"duplicate key", &DuplicateKeyError{Table: "cache", Key: "k"}, IsDuplicateKey, true},
		{"duplicate key wrapped", fmt.Errorf("insert: %w", &DuplicateKeyError{}), IsDuplicateKey, true},
		{"duplicate key other", errors.New("x"), IsDuplicateKey, false},
		{"scrape", &ScrapeError{URL: "u", Err: errors.New("x")}, IsScrape, true},
		{"scrape other", errors.New("x"), IsScrape, false},
		{"corrupt", &CorruptRecordError{Err: errors.New("x")}, IsCorruptRecord, true},
		{"corrupt other", errors.New("x"), IsCorruptRecord, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapError_PreservesOriginalError(t *testing.T) {
	originalErr := &NotFoundError{Resource: "vault", ID: "/notes"}
	wrappedErr := WrapError(originalErr, "failed to import obsidian links")

	if wrappedErr == nil {
		t.Fatal("WrapError should not return nil for non-nil error")
	}

	expectedMsg := "failed to import obsidian links: vault not found: /notes"
	if wrappedErr.Error() != expectedMsg {
		t.Errorf("WrapError message = %v, want %v", wrappedErr.Error(), expectedMsg)
	}

	if !IsNotFound(wrappedErr) {
		t.Error("Wrapped error should still be identifiable as NotFoundError")
	}
}

func TestWrapError_HandlesNilError(t *testing.T) {
	if WrapError(nil, "this should not happen") != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}
