// Package logger provides structured logging for fsm.
//
//   - logger.go: hclog-backed Logger and the package default
//   - context.go: context propagation of the logger and session name
//   - redact.go: masking of credentials in keys and URLs
//
// The CLI logs human-readable text on stderr at warn level, or info when
// --verbose is given. JSON output is available through Config.Format.
package logger
