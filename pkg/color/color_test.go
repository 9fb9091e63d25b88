package color_test

import (
	"baby/pkg/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	prev := color.IsColorEnabled()
	color.EnableColor(enabled)
	t.Cleanup(func() { color.EnableColor(prev) })
}

func TestDisabledColorIsPlain(t *testing.T) {
	withColor(t, false)

	assert.Equal(t, "oops", color.RedText("oops"))
	assert.Equal(t, "3:7", color.Position(3, 7))
	assert.Equal(t, "Error at 3:7: bad\nctx", color.ErrorWithPosition(3, 7, "bad", "ctx"))
	assert.Equal(t, "built", color.Success("built"))
}

func TestEnabledColorWrapsText(t *testing.T) {
	withColor(t, true)

	red := color.RedText("oops")
	assert.Contains(t, red, "oops")
	assert.Contains(t, red, "\x1b[")
	assert.NotEqual(t, "oops", red)
	assert.Contains(t, color.Success("built"), color.GreenText("Success: "))
}
