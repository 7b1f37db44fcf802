// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors so callers can tell recoverable failures from fatal ones

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a required input that does not exist
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an unexpected HTTP status from a remote site
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// DuplicateKeyError is returned when inserting a key that is already stored
type DuplicateKeyError struct {
	Table string
	Key   string
}

// Error implements the error interface
func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key in %s: %s", e.Table, e.Key)
}

// ScrapeError wraps a failure to fetch or parse a single link
type ScrapeError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	return fmt.Sprintf("failed to parse link %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// CorruptRecordError is returned when a stored row cannot be decoded
type CorruptRecordError struct {
	Table string
	Key   string
	Field string
	Err   error
}

// Error implements the error interface
func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt %s in %s for %s: %v", e.Field, e.Table, e.Key, e.Err)
}

// Unwrap returns the underlying cause
func (e *CorruptRecordError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsDuplicateKey checks if an error is a DuplicateKeyError
func IsDuplicateKey(err error) bool {
	var dupErr *DuplicateKeyError
	return errors.As(err, &dupErr)
}

// IsScrape checks if an error is a ScrapeError
func IsScrape(err error) bool {
	var scrapeErr *ScrapeError
	return errors.As(err, &scrapeErr)
}

// IsCorruptRecord checks if an error is a CorruptRecordError
func IsCorruptRecord(err error) bool {
	var corruptErr *CorruptRecordError
	return errors.As(err, &corruptErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
