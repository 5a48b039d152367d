// stack_test.go — verification of backtrace capture.
package xgxexpect

import (
	"strings"
	"testing"
)

// --- Helpers to build a known call chain -------------------------------------

func stackGrab(skipExtra int) Stack {
	return captureStackDefault(skipExtra + 1)
}

func stackTestLevel2(skipExtra int) Stack {
	// First recorded frame with skipExtra=0 should be this function.
	return stackGrab(skipExtra)
}

func stackTestLevel1(skipExtra int) Stack {
	// With skipExtra=1, first recorded frame should be THIS function.
	return stackTestLevel2(skipExtra)
}

func backtraceHere() Backtrace {
	return captureBacktrace(0)
}

// --- Tests -------------------------------------------------------------------

func TestCaptureStack_UsesDefaultWhenMaxDepthZero(t *testing.T) {
	t.Parallel()

	s := captureStack(0, 0)
	if len(s) == 0 {
		t.Fatalf("expected non-empty stack when maxDepth=0 (default), got 0")
	}
	if len(s) > defaultMaxDepth {
		t.Fatalf("stack length exceeds defaultMaxDepth: len=%d default=%d", len(s), defaultMaxDepth)
	}
}

func TestCaptureStack_RespectsMaxDepthLimit(t *testing.T) {
	t.Parallel()

	const limit = 3
	s := captureStack(0, limit)
	if len(s) == 0 {
		t.Fatalf("expected some frames with small limit; got 0")
	}
	if len(s) > limit {
		t.Fatalf("expected <= %d frames; got %d", limit, len(s))
	}
}

func TestCaptureStack_SkipExtraSkipsCorrectFrames(t *testing.T) {
	t.Parallel()

	s0 := stackTestLevel1(0)
	if len(s0) == 0 {
		t.Fatalf("got empty stack for skipExtra=0")
	}
	if !strings.HasSuffix(s0[0].Function, "stackTestLevel2") {
		t.Fatalf("expected first frame to be stackTestLevel2; got %q", s0[0].Function)
	}

	s1 := stackTestLevel1(1)
	if len(s1) == 0 {
		t.Fatalf("got empty stack for skipExtra=1")
	}
	if !strings.HasSuffix(s1[0].Function, "stackTestLevel1") {
		t.Fatalf("expected first frame to be stackTestLevel1; got %q", s1[0].Function)
	}
}

func TestCaptureBacktrace_StartsAtCaller(t *testing.T) {
	t.Parallel()

	bt := backtraceHere()
	if len(bt) == 0 {
		t.Fatalf("expected a backtrace")
	}
	if !strings.HasSuffix(bt[0], "in github.com/xgx-io/xgx-expect.backtraceHere") {
		t.Fatalf("first entry = %q, want backtraceHere frame", bt[0])
	}
	if !strings.Contains(bt[0], "stack_test.go:") {
		t.Fatalf("first entry = %q, want file:line of stack_test.go", bt[0])
	}
}

func TestStack_BacktraceFormatsFrames(t *testing.T) {
	t.Parallel()

	s := Stack{
		{File: "/src/a.go", Line: 12, Function: "pkg.A"},
		{File: "/src/b.go", Line: 3, Function: "pkg.(*T).B"},
	}
	bt := s.Backtrace()
	want := Backtrace{"/src/a.go:12 in pkg.A", "/src/b.go:3 in pkg.(*T).B"}
	if len(bt) != len(want) {
		t.Fatalf("len = %d, want %d", len(bt), len(want))
	}
	for i := range want {
		if bt[i] != want[i] {
			t.Fatalf("bt[%d] = %q, want %q", i, bt[i], want[i])
		}
	}
	if Stack(nil).Backtrace() != nil {
		t.Fatalf("empty stack should give a nil backtrace")
	}
}
