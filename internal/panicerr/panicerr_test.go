package panicerr_test

import (
	"baby/internal/panicerr"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverPassesThrough(t *testing.T) {
	assert.NoError(t, panicerr.Recover("ok", func() error { return nil }))

	sentinel := errors.New("boom")
	err := panicerr.Recover("fail", func() error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
	assert.False(t, panicerr.IsPanic(err))
}

func TestRecoverPanic(t *testing.T) {
	err := panicerr.Recover("prog.by", func() error {
		panic("codegen: operand stack underflow")
	})

	require.Error(t, err)
	assert.True(t, panicerr.IsPanic(err))
	assert.Equal(t, "prog.by panicked: codegen: operand stack underflow", err.Error())
	assert.NotEmpty(t, panicerr.PanicStack(err))
}

func TestRecoverPanicWithError(t *testing.T) {
	sentinel := errors.New("inner")
	err := panicerr.Recover("", func() error { panic(sentinel) })

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "panicked: inner", err.Error())
}

func TestRecoverGoexit(t *testing.T) {
	err := panicerr.Recover("worker", func() error {
		runtime.Goexit()
		return nil
	})

	assert.True(t, panicerr.IsExit(err))
	assert.Equal(t, "worker called runtime.Goexit", err.Error())
}
