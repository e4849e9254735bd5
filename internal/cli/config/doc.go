// Package config manages the fsm configuration file.
//
//   - spec.go: Config struct, platform defaults and validation
//   - loader.go: bootstrap, persistence and runtime resolution
//
// The file lives at ~/.fsm/fsm.conf by default and holds the sessions file
// location plus the two delays used when reopening sessions. It is created
// from platform defaults on first run. Values passed through the --config-*
// flags are written back; runtime flags and FSM_* variables are not.
package config
