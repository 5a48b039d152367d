package xgxexpect

import (
	"context"
	"fmt"
)

// Notify is the single entry point through which the matcher layer reports an
// expectation failure.
//
// The failure's backtrace is captured here unless it already carries one.
// If ctx belongs to an active aggregation block, the failure is appended to
// that block (or, once it has finished, to the nearest enclosing block still
// running) and Notify returns nil: the caller keeps running. Otherwise Notify
// returns f, and the caller propagates it like any other error.
func Notify(ctx context.Context, f *Failure) error {
	return notify(ctx, f, 1)
}

// Failf creates a failure from a format string and notifies it.
func Failf(ctx context.Context, format string, args ...any) error {
	return notify(ctx, NewFailure(fmt.Sprintf(format, args...)), 1)
}

// Expect notifies a failure built from format and args when ok is false.
// It returns nil when ok is true.
func Expect(ctx context.Context, ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	return notify(ctx, NewFailure(fmt.Sprintf(format, args...)), 1)
}

// notify stamps f so that its backtrace starts 'skip' frames above notify's
// caller, then hands it to the active block if there is one.
func notify(ctx context.Context, f *Failure, skip int) error {
	if f == nil {
		return nil
	}
	f.stamp(skip + 1)
	if collectorFrom(ctx).deliver(f) {
		return nil
	}
	return f
}
