// Package domain defines the core domain models for fsm.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain error with a structured error code.
// Codes have the form FSM-<AREA>-<NNNN>.
type DomainError struct {
	Code    string // Error code (e.g., "FSM-SESS-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	msg := e.Message
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, msg)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// Wrap wraps an error with this domain error as the cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	return e.WithCause(cause)
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Session Errors (SESS)
// ============================================================================

var (
	// ErrSessionNotFound indicates the named session is not in the store.
	ErrSessionNotFound = NewDomainError("FSM-SESS-4040", "session does not exist")

	// ErrSessionExists indicates the session name is already taken.
	ErrSessionExists = NewDomainError("FSM-SESS-4090", "session already exists")

	// ErrSessionNameInvalid indicates an empty or blank session name.
	ErrSessionNameInvalid = NewDomainError("FSM-SESS-4001", "invalid session name")
)

// ============================================================================
// Snapshot Errors (SNAP)
// ============================================================================

var (
	// ErrSnapshotDecode covers every failure to turn the browser recovery
	// file into windows: header, decompression, UTF-8, JSON and shape.
	ErrSnapshotDecode = NewDomainError("FSM-SNAP-4000", "cannot decode browser snapshot")
)

// ============================================================================
// Platform Errors (PLAT, PROF)
// ============================================================================

var (
	// ErrUnsupportedPlatform indicates the running OS has no adapter.
	ErrUnsupportedPlatform = NewDomainError("FSM-PLAT-5010", "current platform is not supported")

	// ErrProfileNotFound indicates no release profile directory was found.
	ErrProfileNotFound = NewDomainError("FSM-PROF-4040", "firefox release profile not found")

	// ErrBrowserLaunch indicates the OS refused to start the browser process.
	ErrBrowserLaunch = NewDomainError("FSM-PLAT-5020", "cannot launch browser")
)

// ============================================================================
// Storage and Configuration Errors (STOR, CONF)
// ============================================================================

var (
	// ErrStoreIO indicates the sessions file could not be read, parsed or written.
	ErrStoreIO = NewDomainError("FSM-STOR-5000", "sessions file error")

	// ErrConfigIO indicates the config file could not be read, parsed or written.
	ErrConfigIO = NewDomainError("FSM-CONF-5000", "config file error")

	// ErrConfigInvalid indicates configuration values failed validation.
	ErrConfigInvalid = NewDomainError("FSM-CONF-4000", "invalid configuration")
)
