// Package platform hides the OS-specific parts of fsm.
//
// An Adapter is selected once at startup from runtime.GOOS and supplies:
//
//   - default locations of the sessions file and the config file
//   - the browser recovery snapshot of the release profile
//   - default window/tab delays
//   - "open URL in a new window" and "open URL in a new tab"
//
// Only linux and windows are supported; every other OS fails with
// domain.ErrUnsupportedPlatform when the adapter is created.
package platform
