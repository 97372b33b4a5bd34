// Package common defines shared constants and sentinel errors used across
// the Life OS client and server layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound        = errors.New("not found")
	ErrNotSerializable = errors.New("value is not JSON-serializable")

	// Snapshot errors. A malformed backup document is rejected before any
	// key is overwritten.
	ErrMalformedDocument = errors.New("malformed backup document")

	// Configuration errors: a required external credential or endpoint is
	// absent. Raised before any I/O is attempted.
	ErrConfiguration = errors.New("missing configuration")

	// Input that cannot be parsed as the expected JSON (backup documents,
	// model responses).
	ErrMalformedInput = errors.New("malformed input")

	// An external service (LLM, document database) rejected the request.
	// The underlying message is attached via wrapping.
	ErrExternalService = errors.New("external service error")

	// Microphone or other capture device could not be acquired.
	ErrDeviceAccess = errors.New("device access error")

	// A second submission for an entry whose archive request is still
	// in flight.
	ErrAlreadyInFlight = errors.New("archive already in flight")
)
