package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pybundle/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Error_StandardError(t *testing.T) {
	l, ok := logger.New().(*logger.Logger)
	assert.True(t, ok)

	buf := new(bytes.Buffer)
	l.SetOutput(buf)

	l.Error(errors.New("plain failure"))
	assert.Contains(t, buf.String(), "Error: plain failure")
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	l, ok := logger.New().(*logger.Logger)
	assert.True(t, ok)

	buf := new(bytes.Buffer)
	l.SetOutput(buf)

	err := zerr.Wrap(errors.New("root cause"), "outer layer")
	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "outer layer")
	assert.Contains(t, out, "root cause")
}

func TestLogger_Error_Nil(t *testing.T) {
	l, ok := logger.New().(*logger.Logger)
	assert.True(t, ok)

	buf := new(bytes.Buffer)
	l.SetOutput(buf)

	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_WarnAndInfo(t *testing.T) {
	l, ok := logger.New().(*logger.Logger)
	assert.True(t, ok)

	buf := new(bytes.Buffer)
	l.SetOutput(buf)

	l.Info("staging done")
	l.Warn("manifest missing")

	out := buf.String()
	assert.Contains(t, out, "staging done")
	assert.Contains(t, out, "manifest missing")
}
