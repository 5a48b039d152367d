package xgxexpect

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsFromKV(t *testing.T) {
	tests := []struct {
		name string
		kv   []any
		want fields
	}{
		{name: "empty", kv: nil, want: emptyFields},
		{name: "pairs", kv: []any{"a", 1, "b", "x"}, want: fields{{"a", 1}, {"b", "x"}}},
		{name: "trailing key", kv: []any{"a", 1, "b"}, want: fields{{"a", 1}, {"b", nil}}},
		{name: "non-string key drops pair", kv: []any{123, "v1", "k2", "v2"}, want: fields{{"k2", "v2"}}},
		{name: "only bad keys", kv: []any{1, 2}, want: emptyFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldsFromKV(tt.kv...))
		})
	}
}

func TestFieldsCloneAppend_DoesNotAlias(t *testing.T) {
	base := make(fields, 1, 4)
	base[0] = Field{Key: "a", Val: 1}

	x := fieldsCloneAppend(base, Field{Key: "x", Val: 1})
	y := fieldsCloneAppend(base, Field{Key: "y", Val: 2})

	assert.Equal(t, "x", x[1].Key)
	assert.Equal(t, "y", y[1].Key)
	assert.Len(t, base, 1)
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := newConfig(nil)
	assert.Empty(t, cfg.label)
	assert.Empty(t, cfg.metadata)
	assert.Equal(t, log.StandardLogger(), cfg.logger)

	cfg = newConfig([]Option{nil, WithLabel("x"), WithLogger(nil)})
	assert.Equal(t, "x", cfg.label)
	assert.Equal(t, log.StandardLogger(), cfg.logger)
}

func TestAggregate_NoMetadata(t *testing.T) {
	err := Aggregate(context.Background(), func(ctx context.Context) error {
		_ = Failf(ctx, "a")
		_ = Failf(ctx, "b")
		return nil
	})

	agg, ok := AsAggregate(err)
	require.True(t, ok)
	assert.Nil(t, agg.Metadata())
	assert.Empty(t, agg.MetadataFields())
	assert.Empty(t, agg.Label())
}

func TestAggregate_LogsEntryAndExit(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	_ = Aggregate(context.Background(), func(ctx context.Context) error {
		_ = Failf(ctx, "a")
		_ = Aggregate(ctx, func(ctx context.Context) error {
			return nil
		}, WithLabel("inner"), WithLogger(logger))
		return context.Canceled
	}, WithLabel("outer"), WithLogger(logger))

	entries := hook.AllEntries()
	require.Len(t, entries, 4)

	assert.Equal(t, "entering failure aggregation block", entries[0].Message)
	assert.Equal(t, "outer", entries[0].Data["label"])
	assert.Equal(t, 1, entries[0].Data["depth"])

	assert.Equal(t, "inner", entries[1].Data["label"])
	assert.Equal(t, 2, entries[1].Data["depth"])
	assert.Equal(t, 0, entries[2].Data["failures"])

	last := entries[3]
	assert.Equal(t, log.DebugLevel, last.Level)
	assert.Equal(t, "failure aggregation block finished", last.Message)
	assert.Equal(t, "outer", last.Data["label"])
	assert.Equal(t, 1, last.Data["failures"])
	assert.Equal(t, 1, last.Data["other_errors"])
}

func TestAggregate_NoLogsAboveDebug(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(log.InfoLevel)

	_ = Aggregate(context.Background(), func(ctx context.Context) error {
		return nil
	}, WithLogger(logger))

	assert.Empty(t, hook.AllEntries())
}
