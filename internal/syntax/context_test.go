package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextInsert(t *testing.T) {
	c := NewContext()
	require.NoError(t, c.Insert(NewInstruction("b", NewBlock())))
	require.NoError(t, c.Insert(NewInstruction("a", NewBlock())))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"b", "a"}, c.Names())
	assert.True(t, c.Has("a"))
	assert.Nil(t, c.Lookup("c"))

	err := c.Insert(NewInstruction("a", NewBlock()))
	assert.True(t, errors.Is(err, ErrDuplicate), "got %v", err)

	err = c.Insert(NewInstruction("infect", NewBlock()))
	assert.True(t, errors.Is(err, ErrPrimitive), "got %v", err)
	assert.Equal(t, 2, c.Len())
}

func TestContextZeroValue(t *testing.T) {
	var c Context
	require.NoError(t, c.Insert(NewInstruction("a", NewBlock())))
	assert.Equal(t, []string{"a"}, c.Names())
	assert.NotNil(t, c.Lookup("a"))
}

func TestContextRemove(t *testing.T) {
	c := NewContext()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, c.Insert(NewInstruction(name, NewBlock())))
	}

	inst := c.Remove("b")
	require.NotNil(t, inst)
	assert.Equal(t, "b", inst.Name)
	assert.Equal(t, []string{"a", "c"}, c.Names())
	assert.Nil(t, c.Remove("b"))
}

func TestContextRekey(t *testing.T) {
	newContext := func() *Context {
		c := NewContext()
		for _, name := range []string{"first", "second", "third"} {
			require.NoError(t, c.Insert(NewInstruction(name, NewBlock(NewCall("move")))))
		}
		return c
	}

	t.Run("keeps_order", func(t *testing.T) {
		c := newContext()
		body := c.Lookup("second").Body
		require.NoError(t, c.Rekey("second", "middle"))
		assert.Equal(t, []string{"first", "middle", "third"}, c.Names())
		assert.False(t, c.Has("second"))
		assert.Same(t, body, c.Lookup("middle").Body)
		assert.Equal(t, "middle", c.Lookup("middle").Name)
	})

	t.Run("same_name", func(t *testing.T) {
		c := newContext()
		require.NoError(t, c.Rekey("first", "first"))
		assert.Equal(t, []string{"first", "second", "third"}, c.Names())
	})

	errs := []struct {
		name     string
		old, new string
		want     error
	}{
		{"missing", "fourth", "x", ErrNotFound},
		{"taken", "first", "third", ErrDuplicate},
		{"primitive", "first", "turnright", ErrPrimitive},
		{"keyword", "first", "WHILE", ErrIdentifier},
		{"condition", "first", "next-is-wall", ErrIdentifier},
		{"malformed", "first", "1st", ErrIdentifier},
	}
	for _, tt := range errs {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext()
			err := c.Rekey(tt.old, tt.new)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
			assert.Equal(t, []string{"first", "second", "third"}, c.Names())
		})
	}
}

func TestNilContext(t *testing.T) {
	var c *Context
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Has("a"))
	assert.Nil(t, c.Lookup("a"))
	assert.Empty(t, c.Names())
	assert.Empty(t, c.Instructions())
}
