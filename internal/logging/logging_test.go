package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusAdapterWritesFields(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.JSONFormatter{})

	log := NewLogrusAdapterFromLogger(base)
	log.Debug("parsing started", Field{Key: FieldInputFile, Value: "in.bai"})
	assert.Contains(t, buf.String(), `"parsing started"`)
	assert.Contains(t, buf.String(), `"input_file":"in.bai"`)

	buf.Reset()
	log.WithError(errors.New("boom")).WithField(FieldLine, 4).Error("decode failed")
	assert.Contains(t, buf.String(), `"error":"boom"`)
	assert.Contains(t, buf.String(), `"line":4`)
}

func TestNewLogrusAdapterInvalidLevel(t *testing.T) {
	// an unknown level falls back to info rather than failing
	log := NewLogrusAdapter("chatty", "text")
	require.NotNil(t, log)
}

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := NewMockLogger()
	mock.Info("parsed", Field{Key: FieldRecords, Value: 8})
	mock.WithError(errors.New("boom")).Warn("retrying")

	require.Len(t, mock.Entries, 1, "derived loggers capture into their own entry list")
	assert.Equal(t, "INFO", mock.Entries[0].Level)
	assert.Equal(t, "parsed", mock.Entries[0].Message)
	require.Len(t, mock.Entries[0].Fields, 1)
	assert.Equal(t, FieldRecords, mock.Entries[0].Fields[0].Key)

	assert.True(t, mock.HasMessage("parsed"))
	assert.False(t, mock.HasMessage("retrying"))
}
