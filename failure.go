// failure.go — the expectation failure record.
//
// A Failure is what the matcher layer signals when an expectation is not met.
// It carries a message and a backtrace. The message never changes; the
// backtrace is either supplied at construction or stamped exactly once at the
// interception point, and is never regenerated afterwards.
package xgxexpect

import (
	"fmt"
	"sync/atomic"
)

// Failure is an expectation failure. Use NewFailure or Failf to create one.
//
// A *Failure is safe to share between goroutines: the message is immutable
// and the backtrace is published with a single compare-and-swap.
type Failure struct {
	msg string
	bt  atomic.Pointer[Backtrace]
}

// NewFailure creates a failure with the given message. If a backtrace is
// supplied it is stored verbatim and will never be replaced; otherwise one is
// captured when the failure is first notified.
func NewFailure(msg string, backtrace ...string) *Failure {
	f := &Failure{msg: msg}
	if len(backtrace) > 0 {
		bt := make(Backtrace, len(backtrace))
		copy(bt, backtrace)
		f.bt.Store(&bt)
	}
	return f
}

func (f *Failure) Error() string   { return f.msg }
func (f *Failure) Message() string { return f.msg }

// Backtrace returns a copy of the failure's backtrace, or nil if none has
// been supplied or captured yet.
func (f *Failure) Backtrace() Backtrace {
	p := f.bt.Load()
	if p == nil {
		return nil
	}
	out := make(Backtrace, len(*p))
	copy(out, *p)
	return out
}

// stamp captures a backtrace for f unless one is already present.
// skip counts frames above the caller of stamp.
func (f *Failure) stamp(skip int) {
	if f.bt.Load() != nil {
		return
	}
	bt := captureBacktrace(skip + 1)
	f.bt.CompareAndSwap(nil, &bt)
}

// Format implements fmt.Formatter.
//
//	%v, %s → message
//	%q     → quoted message
//	%+v    → message followed by the backtrace, one frame per line
func (f *Failure) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprint(s, f.msg)
			writeBacktrace(s, f.Backtrace())
			return
		}
		_, _ = fmt.Fprint(s, f.msg)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", f.msg)
	default:
		_, _ = fmt.Fprint(s, f.msg)
	}
}

var _ error = (*Failure)(nil)
