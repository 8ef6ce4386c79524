// Package cmd provides the command-line interface for bintree.
//
// This package implements the CLI commands using the Cobra framework.
//
// # Available Commands
//
//   - demo: Insert, traverse, find and remove, printing each stage
//   - show: Build a tree from the given values and print it
//   - run: Apply a YAML operation script, optionally re-applying on save
//   - version: Print build information
//
// # Command Examples
//
//	// Classic walkthrough
//	bintree demo
//
//	// Draw the tree shape
//	bintree show 8 3 10 1 6 -o tree
//
//	// Dump the tree as JSON after removing the root
//	bintree show 8 3 10 --remove 8 -o json
//
//	// Apply a script and re-apply it on every save
//	bintree run ops.yml --watch
//
// # Configuration Integration
//
// Commands respect configuration from multiple sources in order of precedence:
//
//  1. Command-line flags (highest priority)
//  2. Environment variables (BINTREE_*)
//  3. Configuration file (.bintree.yml)
//  4. Default values (lowest priority)
//
// # Error Handling
//
// Commands return errors to Execute, which exits non-zero. Failed script steps
// are listed in the report and the first failure is returned. Watch mode stops
// cleanly on Ctrl+C.
package cmd
