package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(base)
	logger.WithField("backend", "heuristic").Info("recommendation served",
		Field{Key: "card", Value: "Test Visa"})

	out := buf.String()
	assert.Contains(t, out, `"backend":"heuristic"`)
	assert.Contains(t, out, `"card":"Test Visa"`)
	assert.Contains(t, out, "recommendation served")
}

func TestLogrusAdapterWithError(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(base)
	logger.WithError(errors.New("boom")).Warn("backend failed")

	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestLogrusAdapterChaining(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(base)
	chained := logger.WithField("a", 1).WithFields(Field{Key: "b", Value: 2})
	chained.Info("chained")

	out := buf.String()
	assert.Contains(t, out, `"a":1`)
	assert.Contains(t, out, `"b":2`)

	// The original adapter is unaffected by chaining.
	buf.Reset()
	logger.Info("plain")
	assert.NotContains(t, buf.String(), `"a"`)
}

func TestNewLogrusAdapterLevels(t *testing.T) {
	adapter := NewLogrusAdapter("debug", "json")
	require.NotNil(t, adapter)

	// An invalid level falls back rather than failing.
	adapter = NewLogrusAdapter("nonsense", "text")
	require.NotNil(t, adapter)
}

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("hello", Field{Key: "k", Value: "v"})
	mock.WithError(errors.New("boom")).WithField("card", "x").Warn("failed")

	// Derived loggers record into the root.
	require.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("INFO", "hello"))
	assert.True(t, mock.HasEntry("WARN", "failed"))
	assert.False(t, mock.HasEntry("ERROR", "hello"))
	assert.Equal(t, "v", mock.Entries[0].Fields[0].Value)
	assert.EqualError(t, mock.Entries[1].Error, "boom")
}
