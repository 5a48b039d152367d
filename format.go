// format.go — the aggregate report.
//
// Layout:
//
//	Got 2 failures and 1 other error from failure aggregation block "label":
//	  1) first failure
//	     second line of first failure
//
//	  2) second failure
//
//	  3) pkg.SomeError: boom
//
// Rules:
//   - "and N other error(s)" is omitted when there are none; the quoted label
//     is omitted when the block had none.
//   - Entry numbers are left-padded to the width of the largest index, so the
//     message columns line up.
//   - Leading and trailing blank lines of each message are dropped; the
//     remaining lines after the first are indented under the first.
//   - Non-failure errors render as "<kind>: <message>" without backtrace.
package xgxexpect

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// entryIndent prefixes every non-blank entry line.
const entryIndent = "  "

// Render returns the report text for a. It is pure and deterministic;
// AggregateError.Error caches its result.
func Render(a *AggregateError) string {
	if a == nil {
		return ""
	}
	return render(a, conciseEntry)
}

func render(a *AggregateError, entry func(error) string) string {
	var sb strings.Builder
	sb.WriteString(summary(a))
	sb.WriteString(":\n")

	all := a.AllExceptions()
	width := len(strconv.Itoa(len(all)))
	for i, e := range all {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		writeEntry(&sb, i+1, width, entry(e))
	}
	return sb.String()
}

// summary builds the header without its trailing colon.
func summary(a *AggregateError) string {
	var sb strings.Builder
	sb.WriteString("Got ")
	sb.WriteString(pluralize(len(a.failures), "failure"))
	if n := len(a.others); n > 0 {
		sb.WriteString(" and ")
		sb.WriteString(pluralize(n, "other error"))
	}
	sb.WriteString(" from failure aggregation block")
	if a.label != "" {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Quote(a.label))
	}
	return sb.String()
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

// writeEntry writes one numbered entry. The label is "N) " with N padded to
// width; continuation lines are indented by the label's width.
func writeEntry(sb *strings.Builder, index, width int, msg string) {
	label := fmt.Sprintf("%*d) ", width, index)
	indent := strings.Repeat(" ", len(label))

	lines := trimBlankLines(strings.Split(msg, "\n"))
	if len(lines) == 0 {
		lines = []string{""}
	}

	sb.WriteString(entryIndent)
	sb.WriteString(label)
	sb.WriteString(lines[0])
	for _, line := range lines[1:] {
		sb.WriteByte('\n')
		if isBlank(line) {
			continue
		}
		sb.WriteString(entryIndent)
		sb.WriteString(indent)
		sb.WriteString(line)
	}
}

// trimBlankLines drops whitespace-only lines from both ends.
func trimBlankLines(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	return lines[start:end]
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

// conciseEntry is the entry text used by Error().
func conciseEntry(err error) string {
	switch e := err.(type) {
	case *Failure:
		return e.Message()
	case *AggregateError:
		return e.Error()
	default:
		return kindName(err) + ": " + err.Error()
	}
}

// verboseEntry is the entry text used by %+v: the concise text followed by
// the backtrace, if one can be found. Nested aggregates recurse with %+v.
func verboseEntry(err error) string {
	if a, ok := err.(*AggregateError); ok {
		return fmt.Sprintf("%+v", a)
	}
	var sb strings.Builder
	sb.WriteString(conciseEntry(err))
	writeBacktrace(&sb, BacktraceOf(err))
	return sb.String()
}

// writeBacktrace appends "\nbacktrace:" and one indented line per frame.
// Nothing is written for an empty backtrace.
func writeBacktrace(w io.Writer, bt Backtrace) {
	if len(bt) == 0 {
		return
	}
	_, _ = io.WriteString(w, "\nbacktrace:")
	for _, line := range bt {
		_, _ = io.WriteString(w, "\n  "+line)
	}
}

// kindName names the kind of a non-failure error: the result of a
// Kind() string method when available, otherwise the Go type name with any
// pointer indirection removed (e.g. "fs.PathError").
func kindName(err error) string {
	if k, ok := err.(interface{ Kind() string }); ok {
		if name := k.Kind(); name != "" {
			return name
		}
	}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.String(); name != "" {
		return name
	}
	return "error"
}
