package stack_test

import (
	"baby/pkg/parser/stack"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackOrder(t *testing.T) {
	s := stack.NewStack(1, 2)
	s.Push(3)

	require.Equal(t, 3, s.Size())
	assert.Equal(t, []int{1, 2, 3}, s.Array())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, top)

	for _, want := range []int{3, 2, 1} {
		got, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 0, s.Size())
}

func TestStackEmpty(t *testing.T) {
	s := stack.NewStack[string]()

	_, ok := s.Pop()
	assert.False(t, ok)

	_, ok = s.Peek()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Size())
}
