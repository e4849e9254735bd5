// Package domain defines the core domain models for fsm.
//
// Domain models are pure value objects without any IO dependencies
// or framework coupling. This package contains:
//
//   - SessionRecord: a saved browser layout (timestamp + windows of tab URLs)
//   - Sessions: the named-session mapping persisted by the session store
//   - Errors: Domain-specific error definitions
package domain
