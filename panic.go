package xgxexpect

import (
	"fmt"
)

// PanicError wraps a panic recovered from an aggregation block body.
type PanicError struct {
	Value     any
	Backtrace Backtrace
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", p.Value)
}

// Unwrap returns the panic value when it is an error.
func (p *PanicError) Unwrap() error {
	if err, ok := p.Value.(error); ok {
		return err
	}
	return nil
}

// recovered converts a recovered panic value into the error the block records.
// A panicked *Failure or *AggregateError is returned as-is so it is
// aggregated as a failure. skip counts frames above the caller of recovered.
func recovered(r any, skip int) error {
	switch v := r.(type) {
	case *Failure:
		v.stamp(skip + 1)
		return v
	case *AggregateError:
		return v
	}
	return &PanicError{
		Value:     r,
		Backtrace: captureBacktrace(skip + 1),
	}
}
