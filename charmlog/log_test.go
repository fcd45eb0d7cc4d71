package charmlog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Options{Writer: &buf, Level: "warn", Prefix: "nutrigo"})

	l.Debug("quiet detail")
	l.Warn("something odd")

	out := buf.String()
	assert.NotContains(t, out, "quiet detail")
	assert.Contains(t, out, "something odd")
	assert.Contains(t, out, "nutrigo")
}

func TestNewLoggerBadLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Options{Writer: &buf, Level: "nonsense"})

	l.Debug("quiet detail")
	l.Info("hello")

	out := buf.String()
	assert.NotContains(t, out, "quiet detail")
	assert.Contains(t, out, "hello")
}
