package router

import (
	"fmt"
)

// ErrorKind classifies submission failures. The four local kinds are
// detected before any network traffic; RemoteServiceError covers every
// failure from the inference endpoint; MissingCredential means no API key
// was configured for the selected provider.
type ErrorKind string

const (
	KindInvalidFormat      ErrorKind = "InvalidFormat"
	KindFileTooSmall       ErrorKind = "FileTooSmall"
	KindFileTooLarge       ErrorKind = "FileTooLarge"
	KindCorruptFile        ErrorKind = "CorruptFile"
	KindRemoteServiceError ErrorKind = "RemoteServiceError"
	KindMissingCredential  ErrorKind = "MissingCredential"
)

// ValidationResult is the outcome of pre-flight validation. Computed once
// per submission and never mutated afterward. Recoverable validation
// problems are reported here, not as Go errors.
type ValidationResult struct {
	OK     bool
	Kind   ErrorKind
	Reason string
}

func valid() ValidationResult {
	return ValidationResult{OK: true}
}

func invalid(kind ErrorKind, format string, args ...interface{}) ValidationResult {
	return ValidationResult{OK: false, Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// ValidationError adapts a rejected ValidationResult into an error for
// callers that propagate failures up a command surface.
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Result.Kind, e.Result.Reason)
}

// RemoteServiceError surfaces a provider failure verbatim. No retry is
// attempted; the caller decides whether to re-invoke the run.
type RemoteServiceError struct {
	Provider string
	Err      error
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("remote service error (%s): %v", e.Provider, e.Err)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}
