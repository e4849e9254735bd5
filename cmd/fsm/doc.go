// Command fsm saves the current Firefox session under a name and reopens
// it later.
//
// Usage:
//
//	fsm -a work          store the current session as "work"
//	fsm -l               list stored sessions
//	fsm -o work          reopen "work"
//	fsm -c               print the current session
package main
