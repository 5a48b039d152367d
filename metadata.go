// metadata.go — immutable, ordered metadata attached to an aggregation block.
//
// Design:
//   • Internal representation: append-only []Field (deterministic order).
//   • Builders never mutate: they return NEW slices (no aliasing).
//   • Public view for callers: copy-on-read map[string]any.
//
// The engine never interprets metadata; it only carries it from WithMetadata
// to the AggregateError it constructs.
package xgxexpect

// Field is a single metadata key-value pair.
type Field struct {
	Key string
	Val any
}

// fields is the internal immutable representation of metadata.
// Treat it as append-only; never modify elements in place once published.
type fields []Field

// emptyFields is a canonical empty metadata set.
var emptyFields = make(fields, 0)

// fieldsCloneAppend returns a NEW slice with dst's contents followed by add.
func fieldsCloneAppend(dst fields, add ...Field) fields {
	n := len(dst)
	m := len(add)
	if n+m == 0 {
		return emptyFields
	}
	out := make(fields, n+m)
	copy(out, dst)
	copy(out[n:], add)
	return out
}

// fieldsFromKV parses a variadic list of key-value arguments into fields.
//
// Rules:
//   • Pairs are read left-to-right as (key, value).
//   • Keys MUST be strings; a non-string key drops the ENTIRE pair so later
//     pairs stay aligned.
//   • A trailing key with no value becomes (key, nil).
func fieldsFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return emptyFields
	}
	out := make(fields, 0, len(kv)/2+1)
	for i := 0; i < len(kv); {
		k, ok := kv[i].(string)
		if !ok {
			if i+1 < len(kv) {
				i += 2
			} else {
				i++
			}
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
			i += 2
		} else {
			i++
		}
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return emptyFields
	}
	return out
}

// fieldsToMap creates a NEW map from fields (copy-on-read).
// Later duplicate keys overwrite earlier ones (last-write-wins).
func fieldsToMap(fs fields) map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}
