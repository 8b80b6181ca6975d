// Package console implements the interactive administration console for
// a running cluster: a readline-backed read-eval loop, a command registry
// built at construction, and per-invocation error isolation.
//
// User mistakes (unknown commands, bad argument values, machines that do
// not exist) are printed on the error stream and the loop continues.
// The exit command unwinds exactly to the loop and ends the session with
// exit code 0. Unexpected collaborator failures are deliberately not
// caught; they terminate the session with the diagnostic intact.
package console
