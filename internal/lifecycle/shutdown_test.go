package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecute_RunsHooksInOrder(t *testing.T) {
	var order []string

	hooks := &ShutdownHooks{}
	hooks.AddContext("first", func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	hooks.AddContext("second", func(context.Context) error {
		order = append(order, "second")
		return nil
	})

	hooks.Execute(context.Background())

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestExecute_ContinuesAfterFailure(t *testing.T) {
	var order []string

	hooks := &ShutdownHooks{}
	hooks.AddContext("failing", func(context.Context) error {
		order = append(order, "failing")
		return errors.New("hook failed")
	})
	hooks.AddContext("after", func(context.Context) error {
		order = append(order, "after")
		return nil
	})

	hooks.Execute(context.Background())

	assert.Equal(t, []string{"failing", "after"}, order)
}

func TestAddContext_IgnoresNil(t *testing.T) {
	hooks := &ShutdownHooks{}
	hooks.AddContext("nil hook", nil)

	// must not panic
	hooks.Execute(context.Background())
	assert.Empty(t, hooks.hooks)
}

func TestAddClose(t *testing.T) {
	closer := &recordingCloser{}

	hooks := &ShutdownHooks{}
	hooks.AddClose("closer", closer)
	hooks.Execute(context.Background())

	assert.True(t, closer.closed)
}

func TestAddClose_IgnoresNil(t *testing.T) {
	hooks := &ShutdownHooks{}
	hooks.AddClose("nil closer", nil)

	hooks.Execute(context.Background())
	assert.Empty(t, hooks.hooks)
}

type recordingCloser struct {
	closed bool
}

func (c *recordingCloser) Close() error {
	c.closed = true
	return nil
}
