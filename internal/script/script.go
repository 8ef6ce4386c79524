// Package script replays a sequence of tree operations described in YAML.
//
// A script seeds a tree with values and then applies operations in order:
//
//	seed: [4, 2, 6, 1, 3, 5, 7]
//	ops:
//	  - {op: find, value: 5}
//	  - {op: remove, value: 2}
//	  - {op: min}
//	  - {op: check}
//
// Failures do not stop the replay. They are gathered in the report's
// collector so every step gets a result.
package script

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/bintree/internal/bst"
	"github.com/conneroisu/bintree/internal/errors"
	"github.com/conneroisu/bintree/internal/logging"
)

// Operation names
const (
	OpInsert = "insert"
	OpFind   = "find"
	OpRemove = "remove"
	OpMin    = "min"
	OpCheck  = "check"
	OpClear  = "clear"
)

// Op is a single script step
type Op struct {
	Op    string `yaml:"op"`
	Value *int   `yaml:"value,omitempty"`
}

// Script is a parsed operation script
type Script struct {
	Seed []int `yaml:"seed"`
	Ops  []Op  `yaml:"ops"`
}

// Result records what a step did
type Result struct {
	Index   int
	Op      string
	Value   *int
	Outcome string
	Failed  bool
	Values  []int
}

// Report is the outcome of a replay
type Report struct {
	Results []Result
	Final   []int
	Root    *bst.Node
	Errors  *errors.Collector
}

// Err returns the combined error of all failed steps, or nil
func (r *Report) Err() error {
	return r.Errors.Err()
}

// Parse decodes a script. Unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	var s Script
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &s, nil
}

// Load reads and parses the script at path
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func needsValue(op string) bool {
	return op == OpInsert || op == OpFind || op == OpRemove
}

// Run seeds tree and applies every step of s to it. The returned error is
// only set when ctx is cancelled; step failures are reported in the Report.
func Run(ctx context.Context, tree *bst.Tree, s *Script, logger logging.Logger) (*Report, error) {
	log := logger.WithComponent("script")
	perf := logging.StartOperation(log, "replay")

	report := &Report{
		Results: make([]Result, 0, len(s.Ops)),
		Errors:  errors.NewCollector(),
	}

	for _, v := range s.Seed {
		tree.Insert(v)
	}
	log.Debug(ctx, "Seeded tree", "count", len(s.Seed), "size", tree.Len())

	for i, op := range s.Ops {
		if err := ctx.Err(); err != nil {
			perf.EndWithError(ctx, err)
			report.Final = tree.Values()
			report.Root = tree.Root()
			return report, err
		}

		result := apply(tree, i+1, op, report.Errors)
		log.Debug(ctx, "Applied step",
			"step", result.Index,
			"op", result.Op,
			"outcome", result.Outcome,
		)
		report.Results = append(report.Results, result)
	}

	report.Final = tree.Values()
	report.Root = tree.Root()
	if err := report.Err(); err != nil {
		log.Warn(ctx, err, "Script finished with failures", "failed", len(report.Errors.GetErrorsBySeverity(errors.ErrorSeverityError)))
	}
	perf.End(ctx)
	return report, nil
}

func apply(tree *bst.Tree, index int, op Op, collector *errors.Collector) Result {
	name := strings.ToLower(strings.TrimSpace(op.Op))
	result := Result{Index: index, Op: name, Value: op.Value}

	fail := func(severity errors.ErrorSeverity, msg string, cause error) Result {
		collector.Add(errors.OpError{
			Index:    index,
			Op:       name,
			Value:    op.Value,
			Message:  msg,
			Severity: severity,
			Err:      cause,
		})
		result.Outcome = msg
		result.Failed = severity >= errors.ErrorSeverityError
		result.Values = tree.Values()
		return result
	}

	if needsValue(name) && op.Value == nil {
		return fail(errors.ErrorSeverityError, "missing value", nil)
	}

	switch name {
	case OpInsert:
		tree.Insert(*op.Value)
		result.Outcome = "inserted"
	case OpFind:
		if tree.Contains(*op.Value) {
			result.Outcome = "found"
		} else {
			result.Outcome = "not found"
		}
	case OpRemove:
		if !tree.Remove(*op.Value) {
			return fail(errors.ErrorSeverityInfo, "not present", nil)
		}
		result.Outcome = "removed"
	case OpMin:
		v, ok := tree.Min()
		if !ok {
			return fail(errors.ErrorSeverityInfo, "empty tree", nil)
		}
		result.Outcome = "min " + strconv.Itoa(v)
	case OpCheck:
		if err := tree.Check(); err != nil {
			return fail(errors.ErrorSeverityError, err.Error(), err)
		}
		result.Outcome = "ok"
	case OpClear:
		result.Outcome = fmt.Sprintf("released %d", tree.Clear())
	default:
		return fail(errors.ErrorSeverityError, fmt.Sprintf("unknown operation %q", op.Op), nil)
	}

	result.Values = tree.Values()
	return result
}
