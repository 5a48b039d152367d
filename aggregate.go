// aggregate.go — the aggregation block.
//
// Aggregate runs a body with a fresh collector installed as the innermost
// active block. Failures notified through the body's ctx (from any goroutine)
// are collected instead of propagated. An error returned by the body, or a
// panic escaping it, ends the body and is collected too. The outcome:
//
//	0 problems  → nil
//	1 problem   → that error, unchanged (identity preserved)
//	2+ problems → *AggregateError
//
// When ctx belongs to another block, a non-nil outcome is recorded in that
// outer block (at the position the inner block was entered) and Aggregate
// returns nil so the outer body keeps going. If the outer block has already
// finished, the outcome is returned as usual.
package xgxexpect

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Body is the code run by an aggregation block. The ctx it receives must be
// used for Notify/Failf/Expect calls and handed to any goroutine the body
// starts; returning a non-nil error aborts the rest of the body.
type Body func(ctx context.Context) error

// Aggregate runs body as a failure aggregation block. See the file comment
// for the outcome rules.
func Aggregate(ctx context.Context, body Body, opts ...Option) error {
	cfg := newConfig(opts)

	parent := collectorFrom(ctx)
	slot, nested := -1, false
	if parent != nil {
		slot, nested = parent.reserve()
	}
	c := newCollector(parent)
	ctx = withCollector(ctx, c)

	logger := cfg.logger.WithFields(log.Fields{
		"label": cfg.label,
		"depth": c.depth,
	})
	logger.Debug("entering failure aggregation block")

	func() {
		// Seal even when body calls runtime.Goexit.
		defer c.seal()
		c.run(ctx, body)
	}()

	failures, others := c.snapshot()
	logger.WithFields(log.Fields{
		"failures":     len(failures),
		"other_errors": len(others),
	}).Debug("failure aggregation block finished")

	outcome := classify(failures, others, cfg)
	if outcome != nil && nested && parent.fill(slot, outcome) {
		return nil
	}
	return outcome
}

// run executes body, recording a returned error or a recovered panic.
func (c *collector) run(ctx context.Context, body Body) {
	defer func() {
		if r := recover(); r != nil {
			c.record(recovered(r, 0))
		}
	}()
	if body == nil {
		return
	}
	if err := body(ctx); err != nil {
		c.record(err)
	}
}

// record files an error that escaped the body.
func (c *collector) record(err error) {
	if isFailureKind(err) {
		_ = c.addFailure(err)
		return
	}
	_ = c.addOther(err)
}

// classify turns the collected problems into the block outcome.
func classify(failures, others []error, cfg config) error {
	switch len(failures) + len(others) {
	case 0:
		return nil
	case 1:
		if len(failures) == 1 {
			return failures[0]
		}
		return others[0]
	default:
		return newAggregateError(failures, others, cfg.label, cfg.metadata)
	}
}

// isFailureKind reports whether err belongs in the failures list rather than
// other errors: expectation failures and aggregates of them.
func isFailureKind(err error) bool {
	switch err.(type) {
	case *Failure, *AggregateError:
		return true
	}
	return false
}
