// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for modgraph.
//
// This package implements the Cobra command hierarchy: the root command
// that scans a mod folder and writes the dependency graph, shared lipgloss
// styles for console output, and the exit error type used to carry
// non-zero exit codes out of RunE handlers.
package cmd
