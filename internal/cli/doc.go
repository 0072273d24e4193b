// Package cli defines the single cobra command of create-kapp. The command
// takes no arguments or subcommands: it prepares the terminal, loads
// settings from the environment, and hands control to the scaffold workflow.
package cli
