package errors

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestErrorSeverityString(t *testing.T) {
	testCases := []struct {
		severity ErrorSeverity
		expected string
	}{
		{ErrorSeverityInfo, "info"},
		{ErrorSeverityWarning, "warning"},
		{ErrorSeverityError, "error"},
		{ErrorSeverityFatal, "fatal"},
		{ErrorSeverity(999), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.severity.String())
		})
	}
}

func TestOpErrorError(t *testing.T) {
	withValue := OpError{
		Index:    3,
		Op:       "remove",
		Value:    intPtr(8),
		Message:  "value not present",
		Severity: ErrorSeverityInfo,
	}
	assert.Equal(t, "step 3: remove 8: info: value not present", withValue.Error())

	withoutValue := OpError{
		Index:    1,
		Op:       "rotate",
		Message:  "unknown operation",
		Severity: ErrorSeverityError,
	}
	assert.Equal(t, "step 1: rotate: error: unknown operation", withoutValue.Error())
}

func TestOpErrorUnwrap(t *testing.T) {
	cause := errors.New("broken ordering")
	err := &OpError{Op: "check", Err: cause, Severity: ErrorSeverityError}

	assert.ErrorIs(t, err, cause)
}

func TestNewCollector(t *testing.T) {
	collector := NewCollector()

	assert.NotNil(t, collector)
	assert.Empty(t, collector.GetErrors())
	assert.False(t, collector.HasErrors())
	assert.NoError(t, collector.Err())
}

func TestCollectorAdd(t *testing.T) {
	collector := NewCollector()

	before := time.Now()
	collector.Add(OpError{Index: 2, Op: "find", Message: "boom", Severity: ErrorSeverityError})
	after := time.Now()

	require.Len(t, collector.GetErrors(), 1)
	added := collector.GetErrors()[0]
	assert.Equal(t, 2, added.Index)
	assert.Equal(t, "find", added.Op)
	assert.False(t, added.Timestamp.Before(before))
	assert.False(t, added.Timestamp.After(after))
}

func TestCollectorSeverityFiltering(t *testing.T) {
	collector := NewCollector()

	collector.Add(OpError{Op: "remove", Message: "value not present", Severity: ErrorSeverityInfo})
	assert.False(t, collector.HasErrors())
	assert.Equal(t, 1, collector.Len())
	assert.NoError(t, collector.Err())

	collector.Add(OpError{Op: "rotate", Message: "unknown operation", Severity: ErrorSeverityError})
	assert.True(t, collector.HasErrors())
	assert.Len(t, collector.GetErrorsBySeverity(ErrorSeverityWarning), 1)
	assert.Len(t, collector.GetErrorsBySeverity(ErrorSeverityInfo), 2)
}

func TestCollectorErr(t *testing.T) {
	collector := NewCollector()
	collector.Add(OpError{Index: 1, Op: "rotate", Message: "unknown operation", Severity: ErrorSeverityError})

	var opErr *OpError
	require.ErrorAs(t, collector.Err(), &opErr)
	assert.Equal(t, 1, opErr.Index)

	collector.Add(OpError{Index: 4, Op: "spin", Message: "unknown operation", Severity: ErrorSeverityFatal})
	err := collector.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 script steps failed")
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, 1, opErr.Index)
}

func TestCollectorClear(t *testing.T) {
	collector := NewCollector()
	for i := 0; i < 3; i++ {
		collector.Add(OpError{Index: i, Severity: ErrorSeverityError})
	}
	assert.True(t, collector.HasErrors())

	collector.Clear()

	assert.False(t, collector.HasErrors())
	assert.Empty(t, collector.GetErrors())
}
