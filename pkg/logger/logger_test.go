package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.error)
	assert.NotNil(t, logger.warn)
}

func TestInfo(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriter(&out, &errOut)

	logger.Info("Session %s started for %s", "s-1", "@you")

	assert.Contains(t, out.String(), "[INFO] Session s-1 started for @you")
	assert.Empty(t, errOut.String())
}

func TestError(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriter(&out, &errOut)

	logger.Error("Failed to toggle like: %v", "not found")

	assert.Contains(t, errOut.String(), "[ERROR] Failed to toggle like: not found")
	assert.Empty(t, out.String())
}

func TestWarn(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriter(&out, &errOut)

	logger.Warn("Dropped %d events", 3)

	assert.Contains(t, out.String(), "[WARN] Dropped 3 events")
}

func TestLogger_MultipleCalls(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := NewWithWriter(&out, &errOut)

	logger.Info("Info 1")
	logger.Error("Error 1")
	logger.Warn("Warn 1")
	logger.Info("Info 2")

	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("\n")))
	assert.Equal(t, 1, bytes.Count(errOut.Bytes(), []byte("\n")))
}
