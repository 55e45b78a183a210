package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentedPassThrough(t *testing.T) {
	ctx := context.Background()
	memory, err := NewMemory[StoreTestRecord](time.Minute, 100)
	require.NoError(t, err)

	store := NewInstrumented[StoreTestRecord](memory, "memory")

	expected := StoreTestRecord{Token: "abc"}
	require.NoError(t, store.Save(ctx, "node-a", expected))

	record, found, err := store.Load(ctx, "node-a")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, expected, record)

	require.NoError(t, store.Remove(ctx, "node-a"))

	_, found, err = store.Load(ctx, "node-a")
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, store.Close())
}

func TestInstrumentedErrorPassThrough(t *testing.T) {
	ctx := context.Background()
	failure := errors.New("backend unavailable")
	store := NewInstrumented[StoreTestRecord](&erroringStore{err: failure}, "test")

	err := store.Save(ctx, "node-a", StoreTestRecord{})
	assert.ErrorIs(t, err, failure)

	_, _, err = store.Load(ctx, "node-a")
	assert.ErrorIs(t, err, failure)

	err = store.Remove(ctx, "node-a")
	assert.ErrorIs(t, err, failure)
}

// erroringStore fails every operation with a fixed error.
type erroringStore struct {
	err error
}

func (s *erroringStore) Save(context.Context, string, StoreTestRecord) error {
	return s.err
}

func (s *erroringStore) Load(context.Context, string) (StoreTestRecord, bool, error) {
	return StoreTestRecord{}, false, s.err
}

func (s *erroringStore) Remove(context.Context, string) error {
	return s.err
}

func (s *erroringStore) Close() error {
	return nil
}
