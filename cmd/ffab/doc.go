// Package main hosts the ffab CLI entrypoint and command graph.
//
// The Cobra command tree loads chain files, compiles them into ffmpeg
// -filter_complex expressions, and prints either the expression, a table of
// the chain, or the complete ffmpeg command line. Configuration resolution
// and logger setup live in commandContext so subcommands only deal with
// presentation.
//
// Keep this package lean: new behavior belongs in internal/chain or
// internal/chainfile first and is surfaced here through flags.
package main
