package apperrors

import (
	"errors"
	"fmt"
)

// Sentinels for the error classes the service layer returns. Controllers and
// the error-handler middleware match on these with errors.Is.
var (
	// ErrCorruptData marks a stored value that exists but cannot be decoded.
	// Repositories recover from it (empty list + warning); it is exported so
	// callers that need to distinguish data loss still can.
	ErrCorruptData = errors.New("stored value is not decodable")

	// ErrStorageWrite marks a rejected write. Always propagated; in-memory
	// state must not be trusted as durable until the write succeeds.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrGateway marks a transport or parse failure talking to the AI
	// service. Fatal to the single in-flight operation, never retried.
	ErrGateway = errors.New("ai gateway failure")

	// ErrValidation marks a request rejected before any side effect.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing record.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks a missing or dead session.
	ErrUnauthorized = errors.New("unauthorized")
)

// CorruptData wraps a decode failure for the given storage key.
func CorruptData(key string, cause error) error {
	return fmt.Errorf("%w: key %s: %v", ErrCorruptData, key, cause)
}

// StorageWrite wraps a store rejection for the given storage key.
func StorageWrite(key string, cause error) error {
	return fmt.Errorf("%w: key %s: %v", ErrStorageWrite, key, cause)
}

// Gateway wraps a failure of the named AI operation.
func Gateway(op string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrGateway, op, cause)
}

// Validation builds a rejection with a caller-facing message.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
