// Package internal contains the implementation packages for bintree.
//
// # Package Organization
//
//   - bst: the unbalanced binary search tree, its ordering check and a
//     mutex-guarded wrapper
//   - script: YAML operation scripts and their replay against a tree
//   - render: text, tree, json and yaml output of a tree
//   - errors: per-step failures with severities and a collector
//   - config: Viper-backed configuration with defaults and validation
//   - logging: structured logging over log/slog
//   - watcher: debounced fsnotify watching for script files
//   - version: build metadata
//
// The bst package has no dependencies on the others. Everything else builds
// on it and is tied together by the cmd package.
package internal
