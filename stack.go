// stack.go — backtrace capture for failures intercepted by an aggregation block.
//
// Design goals:
//   - Use runtime.Callers + runtime.CallersFrames for accurate frame resolution
//     (handles inlining correctly).
//   - Capture once, at the interception point, and never regenerate.
//   - Bounded depth; capture only happens on failure paths.
package xgxexpect

import (
	"fmt"
	"runtime"
)

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// String renders the frame as a backtrace line: "file:line in function".
func (f Frame) String() string {
	return fmt.Sprintf("%s:%d in %s", f.File, f.Line, f.Function)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// Backtrace returns the stack as an ordered sequence of location strings.
func (s Stack) Backtrace() Backtrace {
	if len(s) == 0 {
		return nil
	}
	out := make(Backtrace, len(s))
	for i, fr := range s {
		out[i] = fr.String()
	}
	return out
}

// Backtrace is an ordered sequence of opaque location strings, most recent
// call first. The engine never interprets the entries.
type Backtrace []string

const (
	// defaultMaxDepth bounds capture on failure paths.
	defaultMaxDepth = 64
)

// captureStackDefault captures a stack skipping 'skip' frames, with the
// default depth bound.
//
// Skip model:
//
//	Notify → captureBacktrace → captureStackDefault → captureStack → runtime.Callers
//
// captureStack adds +3 (runtime.Callers, captureStack, captureStackDefault) so
// that skip=0 starts at the caller of captureStackDefault.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)

	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// captureBacktrace captures a Backtrace whose first entry is the function that
// called captureBacktrace; 'skip' drops that many further frames.
func captureBacktrace(skip int) Backtrace {
	return captureStackDefault(skip + 1).Backtrace()
}
