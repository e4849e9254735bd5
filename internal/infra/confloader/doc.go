// Package confloader layers configuration sources on top of koanf.
//
// Sources are merged in order and later sources override earlier ones:
//
//  1. Defaults (WithDefaults)
//  2. Configuration file, JSON or YAML by extension (WithConfigFile)
//  3. Environment variables (WithEnvPrefix, off unless set)
//  4. Command-line flags (WithOverrides)
//
// Keys are flat, so FSM_WINDOW_DELAY maps to window_delay. Load reports
// unreadable sources as ErrSource and values of the wrong type as ErrDecode.
package confloader
