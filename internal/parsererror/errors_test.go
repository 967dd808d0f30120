package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexicalError(t *testing.T) {
	err := &LexicalError{Line: 3, Snippet: "16,495", Msg: "missing record terminator"}
	assert.Equal(t, "lexical error at line 3: missing record terminator (near '16,495')", err.Error())

	bare := &LexicalError{Line: 1, Msg: "empty input"}
	assert.Equal(t, "lexical error at line 1: empty input", bare.Error())
}

func TestFieldError(t *testing.T) {
	cause := errors.New("strconv failure")
	err := &FieldError{Line: 2, RecordCode: "16", Field: 2, Value: "abc", Msg: "not numeric", Err: cause}
	assert.Equal(t, "record 16 at line 2: field 2 ('abc'): not numeric", err.Error())
	assert.ErrorIs(t, err, cause)

	wholeRecord := &FieldError{Line: 2, RecordCode: "01", Msg: "too few fields"}
	assert.Equal(t, "record 01 at line 2: too few fields", wholeRecord.Error())
	assert.Nil(t, errors.Unwrap(wholeRecord))
}

func TestUnfinishedError(t *testing.T) {
	err := &UnfinishedError{State: "InGroup"}
	assert.Contains(t, err.Error(), "InGroup")
	assert.Contains(t, err.Error(), "never closed")
}

func TestConvertError(t *testing.T) {
	err := &ConvertError{Line: 9, RecordCode: "02", State: "Done", Msg: "trailing record"}
	assert.Equal(t, "record 02 at line 9 invalid in state Done: trailing record", err.Error())
}
