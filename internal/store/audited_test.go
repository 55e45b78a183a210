package store

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redactedRecord renders only the shape of the record when logged.
type redactedRecord struct {
	Secret string `json:"secret"`
}

func (r redactedRecord) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("has_secret", r.Secret != "")
}

func auditedTestStore(t *testing.T) (*Audited[redactedRecord], *bytes.Buffer, context.Context) {
	t.Helper()

	memory, err := NewMemory[redactedRecord](time.Minute, 100)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	return NewAudited[redactedRecord](memory, "memory"), &buf, ctx
}

func TestAuditedLogsOperations(t *testing.T) {
	store, buf, ctx := auditedTestStore(t)

	require.NoError(t, store.Save(ctx, "node-a", redactedRecord{Secret: "super-secret"}))

	_, found, err := store.Load(ctx, "node-a")
	require.NoError(t, err)
	require.True(t, found)

	require.NoError(t, store.Remove(ctx, "node-a"))

	logged := buf.String()
	assert.Contains(t, logged, `"operation":"save"`)
	assert.Contains(t, logged, `"operation":"load"`)
	assert.Contains(t, logged, `"operation":"remove"`)
	assert.Contains(t, logged, `"node":"node-a"`)
	assert.Contains(t, logged, `"found":true`)
}

func TestAuditedNeverLogsRecordMaterial(t *testing.T) {
	store, buf, ctx := auditedTestStore(t)

	require.NoError(t, store.Save(ctx, "node-a", redactedRecord{Secret: "super-secret"}))

	logged := buf.String()
	assert.NotContains(t, logged, "super-secret")
	assert.Contains(t, logged, `"has_secret":true`)
}

func TestAuditedPassThrough(t *testing.T) {
	store, _, ctx := auditedTestStore(t)

	expected := redactedRecord{Secret: "value"}
	require.NoError(t, store.Save(ctx, "node-a", expected))

	record, found, err := store.Load(ctx, "node-a")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, expected, record)

	assert.NoError(t, store.Close())
}
