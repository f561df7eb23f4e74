// Package tools provides host-command helpers shared by belt scripts.
//
// Ownership boundary:
// - command existence probing
//
// - command execution with captured output and exit codes
package tools
