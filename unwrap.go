// unwrap.go — traversal helpers over aggregate trees.
//
// An aggregate tree is an *AggregateError whose entries may themselves be
// aggregates (one per nested block that ended with two or more problems).
//
//   - Walk:        pre-order visit of every node. Stops early if visit returns false.
//   - Flatten:     leaf problems (non-aggregates) in report order.
//   - Count:       number of leaf failures and leaf other errors.
//   - BacktraceOf: backtrace carried by a failure, a recovered panic, or an
//     error with a github.com/pkg/errors stack.
//
// Identity checks must not use == blindly: interface values whose dynamic type
// is not comparable panic when compared. sameError guards for that.
package xgxexpect

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// isComparable reports whether err's dynamic type is comparable.
func isComparable(err error) bool {
	if err == nil {
		return false
	}
	return reflect.TypeOf(err).Comparable()
}

// ptrID returns a pointer identity for pointer-typed dynamic errors.
func ptrID(err error) (uintptr, bool) {
	if err == nil {
		return 0, false
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Pointer(), true
	}
	return 0, false
}

// sameError reports whether a and b are the same error value.
func sameError(a, b error) bool {
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if isComparable(a) {
		return a == b
	}
	pa, okA := ptrID(a)
	pb, okB := ptrID(b)
	return okA && okB && pa == pb
}

// Walk visits err and, if it is an aggregate, every entry below it, in
// pre-order and report order. Returning false from visit stops the walk.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	stack := []error{err}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}
		if a, ok := cur.(*AggregateError); ok {
			kids := a.AllExceptions()
			for i := len(kids) - 1; i >= 0; i-- {
				if kids[i] != nil {
					stack = append(stack, kids[i])
				}
			}
		}
	}
}

// Flatten returns the non-aggregate problems under err in report order.
// A non-aggregate err yields a single-element slice; nil yields nil.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}
	var out []error
	Walk(err, func(e error) bool {
		if _, ok := e.(*AggregateError); !ok {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Count returns the number of expectation failures and other errors under
// err, descending into nested aggregates.
func Count(err error) (failures, others int) {
	Walk(err, func(e error) bool {
		switch e.(type) {
		case *AggregateError:
		case *Failure:
			failures++
		default:
			others++
		}
		return true
	})
	return failures, others
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// BacktraceOf returns the backtrace attached to err, or nil. Failures and
// recovered panics report their own; other errors are searched for a
// github.com/pkg/errors stack trace along their unwrap chain.
func BacktraceOf(err error) Backtrace {
	switch e := err.(type) {
	case nil:
		return nil
	case *Failure:
		return e.Backtrace()
	case *PanicError:
		return append(Backtrace(nil), e.Backtrace...)
	case *AggregateError:
		return nil
	}
	var st stackTracer
	if !errors.As(err, &st) {
		return nil
	}
	frames := st.StackTrace()
	if len(frames) == 0 {
		return nil
	}
	out := make(Backtrace, len(frames))
	for i, f := range frames {
		out[i] = fmt.Sprintf("%s:%d in %n", f, f, f)
	}
	return out
}
