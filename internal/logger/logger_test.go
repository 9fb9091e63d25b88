package logger_test

import (
	"baby/internal/logger"
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLevels(t *testing.T) {
	t.Cleanup(func() { logger.Init(false, true) })

	var buf bytes.Buffer
	logger.InitWriter(&buf, false, true)
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	log.Info("hidden")
	log.Warn("shown", "file", "a.baby")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "BABY")
	assert.Contains(t, buf.String(), "file=a.baby")

	buf.Reset()
	logger.InitWriter(&buf, true, true)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	log.Debug("details")
	assert.Contains(t, buf.String(), "details")
}
