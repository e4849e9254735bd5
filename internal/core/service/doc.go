// Package service implements the session manager operations.
//
// SessionService lists, checks, adds, updates, removes and opens named
// browser sessions. Storage, snapshot decoding and browser control are
// injected through small interfaces so the service can be exercised
// without a browser or a home directory.
package service
