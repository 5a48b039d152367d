// aggregate_error.go — the composite error raised when a block ends with two
// or more problems.
//
// Interop:
//   • Unwrap() []error exposes AllExceptions, so errors.Is/As walk into every
//     failure and other error, including nested aggregates.
//   • Error() is the rendered report, built on first use and cached.
//   • %+v renders the same report with every entry in verbose form.
package xgxexpect

import (
	"fmt"
	"sync"
)

// AggregateError is the composite failure produced by Aggregate.
//
// Failures holds expectation failures in the order their statements began,
// and may also hold nested *AggregateError values (or a lone error that a
// nested block produced). OtherErrors holds the errors that escaped the block
// body and were not expectation failures. The value is immutable once built.
type AggregateError struct {
	failures []error
	others   []error
	label    string
	metadata fields

	once sync.Once
	msg  string
}

func newAggregateError(failures, others []error, label string, md fields) *AggregateError {
	return &AggregateError{
		failures: failures,
		others:   others,
		label:    label,
		metadata: md,
	}
}

// Failures returns a copy of the collected failures.
func (a *AggregateError) Failures() []error { return cloneErrors(a.failures) }

// OtherErrors returns a copy of the collected non-failure errors.
func (a *AggregateError) OtherErrors() []error { return cloneErrors(a.others) }

// AllExceptions returns Failures followed by OtherErrors. It is rebuilt on
// every call.
func (a *AggregateError) AllExceptions() []error {
	out := make([]error, 0, len(a.failures)+len(a.others))
	out = append(out, a.failures...)
	out = append(out, a.others...)
	return out
}

// Label returns the block label, or "" when none was given.
func (a *AggregateError) Label() string { return a.label }

// Metadata returns a copy of the block metadata (last write wins on
// duplicate keys). It returns nil when the block had no metadata.
func (a *AggregateError) Metadata() map[string]any { return fieldsToMap(a.metadata) }

// MetadataFields returns the block metadata in insertion order.
func (a *AggregateError) MetadataFields() []Field {
	return fieldsCloneAppend(a.metadata)
}

// Error renders the report. The result is computed once.
func (a *AggregateError) Error() string {
	a.once.Do(func() {
		a.msg = Render(a)
	})
	return a.msg
}

// Unwrap exposes every collected problem to errors.Is/As.
func (a *AggregateError) Unwrap() []error { return a.AllExceptions() }

// Format implements fmt.Formatter.
//
//	%v, %s → Error()
//	%q     → quoted Error()
//	%+v    → report with verbose entries (backtraces included)
func (a *AggregateError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprint(s, render(a, verboseEntry))
			return
		}
		_, _ = fmt.Fprint(s, a.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", a.Error())
	default:
		_, _ = fmt.Fprint(s, a.Error())
	}
}

func cloneErrors(errs []error) []error {
	if len(errs) == 0 {
		return nil
	}
	out := make([]error, len(errs))
	copy(out, errs)
	return out
}

var _ interface {
	error
	Unwrap() []error
} = (*AggregateError)(nil)
