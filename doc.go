// Package xgxexpect aggregates expectation failures.
//
// Normally the first failed expectation in a test ends it. Inside an
// aggregation block every failure is collected instead, the block runs to the
// end, and a single combined error describes everything that went wrong.
//
// # Reporting failures
//
// The matcher layer reports through one entry point:
//
//	err := xgxexpect.Notify(ctx, xgxexpect.NewFailure("expected 3, got 4"))
//
// Failf and Expect are shorthands. When ctx belongs to an active block the
// failure is collected and the call returns nil; otherwise the failure itself
// is returned and propagates like any error. A backtrace is captured at that
// point unless the failure already carries one.
//
// # Aggregation blocks
//
//	err := xgxexpect.Aggregate(ctx, func(ctx context.Context) error {
//		_ = xgxexpect.Expect(ctx, got%2 == 0, "expected %d to be even", got)
//		_ = xgxexpect.Expect(ctx, got > 0, "expected %d to be positive", got)
//		return nil
//	}, xgxexpect.WithLabel("numbers"))
//
// Outcome:
//
//	+--------------------+-----------------------------------------------+
//	| Problems collected | Aggregate returns                             |
//	+--------------------+-----------------------------------------------+
//	| 0                  | nil                                           |
//	| 1                  | that error, unchanged                         |
//	| 2 or more          | *AggregateError                               |
//	+--------------------+-----------------------------------------------+
//
// Returning a non-nil error from the body (or panicking) stops the body; the
// error is collected like the failures before it. Goroutines started by the
// body must receive its ctx and be joined before the body returns. A failure
// reported through the ctx of a block that has already finished goes to the
// nearest enclosing block that is still running.
//
// A block nested in another block (its ctx comes from the outer body) never
// returns its outcome: it is recorded in the outer block at the position the
// inner block started, and the outer body carries on.
//
// # Formatting
//
// *AggregateError implements fmt.Formatter:
//   - `%v`, `%s` → the report (same as Error())
//   - `%+v`      → the report with backtraces under each entry
//   - `%q`       → quoted report
//
// Error() is rendered once and cached. Render produces the same text directly.
//
// # Interop
//
//   - AggregateError implements Unwrap() []error, so errors.Is/As reach every
//     collected problem, including those of nested aggregates.
//   - Single-problem outcomes are the original values, so callers cannot tell
//     them apart from failures raised outside a block.
//   - Block entry and exit are logged at debug level through logrus; see
//     WithLogger.
package xgxexpect
