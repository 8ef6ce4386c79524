// Package errors collects failures raised while replaying tree operation
// scripts. Each failure is tied to the script step that produced it.
package errors

import (
	"fmt"
	"sync"
	"time"
)

// ErrorSeverity represents the severity of an error
type ErrorSeverity int

const (
	ErrorSeverityInfo ErrorSeverity = iota
	ErrorSeverityWarning
	ErrorSeverityError
	ErrorSeverityFatal
)

// String returns the string representation of the severity
func (s ErrorSeverity) String() string {
	switch s {
	case ErrorSeverityInfo:
		return "info"
	case ErrorSeverityWarning:
		return "warning"
	case ErrorSeverityError:
		return "error"
	case ErrorSeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// OpError represents a failed or notable script step
type OpError struct {
	Index     int
	Op        string
	Value     *int
	Message   string
	Severity  ErrorSeverity
	Timestamp time.Time
	Err       error
}

// Error implements the error interface
func (oe *OpError) Error() string {
	if oe.Value != nil {
		return fmt.Sprintf("step %d: %s %d: %s: %s", oe.Index, oe.Op, *oe.Value, oe.Severity, oe.Message)
	}
	return fmt.Sprintf("step %d: %s: %s: %s", oe.Index, oe.Op, oe.Severity, oe.Message)
}

// Unwrap returns the underlying cause, if any
func (oe *OpError) Unwrap() error {
	return oe.Err
}

// Collector gathers step errors in the order they were reported
type Collector struct {
	opErrors []OpError
	mutex    sync.RWMutex
}

// NewCollector creates a new error collector
func NewCollector() *Collector {
	return &Collector{
		opErrors: make([]OpError, 0),
	}
}

// Add adds a step error to the collector
func (c *Collector) Add(err OpError) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	err.Timestamp = time.Now()
	c.opErrors = append(c.opErrors, err)
}

// GetErrors returns a copy of all collected errors
func (c *Collector) GetErrors() []OpError {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	result := make([]OpError, len(c.opErrors))
	copy(result, c.opErrors)
	return result
}

// GetErrorsBySeverity returns errors at or above the given severity
func (c *Collector) GetErrorsBySeverity(min ErrorSeverity) []OpError {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	var filtered []OpError
	for _, err := range c.opErrors {
		if err.Severity >= min {
			filtered = append(filtered, err)
		}
	}
	return filtered
}

// HasErrors returns true if any error of error severity or worse was collected
func (c *Collector) HasErrors() bool {
	return len(c.GetErrorsBySeverity(ErrorSeverityError)) > 0
}

// Len returns the number of collected entries of any severity
func (c *Collector) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.opErrors)
}

// Clear clears all errors
func (c *Collector) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.opErrors = c.opErrors[:0]
}

// Err joins every error-severity entry into a single error, or nil
func (c *Collector) Err() error {
	failures := c.GetErrorsBySeverity(ErrorSeverityError)
	if len(failures) == 0 {
		return nil
	}
	if len(failures) == 1 {
		return &failures[0]
	}
	return fmt.Errorf("%d script steps failed, first: %w", len(failures), &failures[0])
}
