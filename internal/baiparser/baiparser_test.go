package baiparser

import (
	"errors"
	"strings"
	"testing"

	"fjacquet/bai-csv/internal/logging"
	"fjacquet/bai-csv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFromReader(t *testing.T) {
	log := logging.NewMockLogger()
	file, err := Parse(strings.NewReader(sampleTransmission), log)
	require.NoError(t, err)
	require.Len(t, file.Groups, 1)
	assert.True(t, log.HasMessage("Parsed BAI transmission"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestParseReaderFailure(t *testing.T) {
	_, err := Parse(failingReader{}, logging.NewMockLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading input")
}

func TestParseNilLoggerUsesDefault(t *testing.T) {
	file, err := ParseBytes([]byte(sampleTransmission), nil)
	require.NoError(t, err)
	assert.NotNil(t, file)
}

func TestParseStopsOnFirstError(t *testing.T) {
	// the bad record on line 2 surfaces before any structural checks run
	input := "01,A,B,210706,,1/\n16,no-terminator\n"
	_, err := ParseBytes([]byte(input), logging.NewMockLogger())
	var lexErr *parsererror.LexicalError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 2, lexErr.Line)
}
