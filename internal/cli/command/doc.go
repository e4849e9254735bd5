// Package command wires the fsm command line.
//
//   - root.go: the urfave/cli application, its flags and startup sequence
//   - session.go: the list, check, show, add, update, remove and open actions
//
// All actions hang off root flags rather than subcommands so that
// "fsm -l -a work" lists and then adds in a single run. Startup creates or
// updates the config file, resolves runtime overrides and makes sure the
// sessions file exists before any action runs.
package command
