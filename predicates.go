// predicates.go — classification helpers for outcomes returned by Aggregate.
//
// All helpers use errors.As, so they also see through wrappers added by
// callers (fmt.Errorf("...: %w", err) and friends).
package xgxexpect

import (
	"errors"
)

// IsFailure reports whether err is, or wraps, an expectation failure.
// An aggregate is not a failure by itself; use IsAggregate for that.
func IsFailure(err error) bool {
	if err == nil {
		return false
	}
	var f *Failure
	return errors.As(err, &f)
}

// IsAggregate reports whether err is, or wraps, an *AggregateError.
func IsAggregate(err error) bool {
	_, ok := AsAggregate(err)
	return ok
}

// AsAggregate returns the first *AggregateError along err's chain.
func AsAggregate(err error) (*AggregateError, bool) {
	if err == nil {
		return nil, false
	}
	var a *AggregateError
	if errors.As(err, &a) {
		return a, true
	}
	return nil, false
}
