// collector.go — per-block failure accumulator.
//
// Collectors form a stack through their parent links. The ctx handed to a
// block body carries that block's collector, so every goroutine holding the
// ctx reports into the same block, and two blocks running side by side in
// different goroutines never see each other's collectors.
package xgxexpect

import (
	"context"
	"sync"
)

// collector accumulates the problems of one Aggregate invocation.
//
// failures holds slots in program order. A nil slot is a reservation made
// when a nested block was entered; it is filled with the nested outcome when
// that block finishes, or stays nil (and is skipped) if it passed.
//
// Once sealed, a collector accepts nothing; callers fall back to the parent.
type collector struct {
	parent *collector
	depth  int

	mu       sync.Mutex
	sealed   bool
	failures []error
	others   []error
}

func newCollector(parent *collector) *collector {
	c := &collector{parent: parent, depth: 1}
	if parent != nil {
		c.depth = parent.depth + 1
	}
	return c
}

type collectorKey struct{}

// collectorFrom returns the collector of the innermost block ctx belongs to.
func collectorFrom(ctx context.Context) *collector {
	if ctx == nil {
		return nil
	}
	c, _ := ctx.Value(collectorKey{}).(*collector)
	return c
}

func withCollector(ctx context.Context, c *collector) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, collectorKey{}, c)
}

// deliver appends f to the nearest unsealed collector starting at c and
// reports whether one took it.
func (c *collector) deliver(f *Failure) bool {
	for ; c != nil; c = c.parent {
		if c.addFailure(f) {
			return true
		}
	}
	return false
}

// addFailure appends a failure unless the collector is sealed. An error that
// is already collected is not added twice.
func (c *collector) addFailure(err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sealed {
		return false
	}
	if !c.holdsLocked(err) {
		c.failures = append(c.failures, err)
	}
	return true
}

// addOther is addFailure for errors that are not expectation failures.
func (c *collector) addOther(err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sealed {
		return false
	}
	if !c.holdsLocked(err) {
		c.others = append(c.others, err)
	}
	return true
}

// reserve appends an empty failure slot and returns its index.
func (c *collector) reserve() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sealed {
		return -1, false
	}
	c.failures = append(c.failures, nil)
	return len(c.failures) - 1, true
}

// fill stores err in a slot obtained from reserve.
func (c *collector) fill(slot int, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sealed {
		return false
	}
	c.failures[slot] = err
	return true
}

func (c *collector) holdsLocked(err error) bool {
	for _, e := range c.failures {
		if sameError(e, err) {
			return true
		}
	}
	for _, e := range c.others {
		if sameError(e, err) {
			return true
		}
	}
	return false
}

func (c *collector) seal() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sealed = true
}

func (c *collector) isSealed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sealed
}

// snapshot returns the collected failures (reservations dropped) and others.
func (c *collector) snapshot() (failures, others []error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.failures {
		if e != nil {
			failures = append(failures, e)
		}
	}
	if len(c.others) > 0 {
		others = make([]error, len(c.others))
		copy(others, c.others)
	}
	return failures, others
}
