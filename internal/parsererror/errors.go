// Package parsererror defines the error types produced by the BAI pipeline.
// Four kinds exist and they do not overlap: a LexicalError means the input
// could not be framed into records at all, a FieldError means a single record
// did not match its field grammar, an UnfinishedError means the input ended
// with an open file, group or account, and a ConvertError means a well-formed
// record appeared where the nesting rules do not allow it.
package parsererror

import "fmt"

// LexicalError reports input that could not be split into well-formed records.
type LexicalError struct {
	Line    int    // 1-based physical line number
	Snippet string // offending line content, possibly truncated
	Msg     string
}

func (e *LexicalError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("lexical error at line %d: %s (near '%s')", e.Line, e.Msg, e.Snippet)
	}
	return fmt.Sprintf("lexical error at line %d: %s", e.Line, e.Msg)
}

// FieldError reports a record whose fields did not match the grammar for its
// type code. Field is the 1-based index of the offending field within the
// record, 0 when the record as a whole is at fault (e.g. wrong arity).
type FieldError struct {
	Line       int
	RecordCode string
	Field      int
	Value      string
	Msg        string
	Err        error
}

func (e *FieldError) Error() string {
	if e.Field > 0 {
		return fmt.Sprintf("record %s at line %d: field %d ('%s'): %s",
			e.RecordCode, e.Line, e.Field, e.Value, e.Msg)
	}
	return fmt.Sprintf("record %s at line %d: %s", e.RecordCode, e.Line, e.Msg)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// UnfinishedError reports input that ended while the conversion state machine
// still had something open. It signals a truncated or corrupt transmission.
type UnfinishedError struct {
	State string // nesting state at end of input
}

func (e *UnfinishedError) Error() string {
	return fmt.Sprintf("input ended in state %s: file, group or account was never closed", e.State)
}

// ConvertError reports a structural rule violated by an otherwise well-formed
// record: a trailer with nothing open, a continuation with nothing to merge
// into, or a record that is invalid in the current state.
type ConvertError struct {
	Line       int
	RecordCode string
	State      string
	Msg        string
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("record %s at line %d invalid in state %s: %s",
		e.RecordCode, e.Line, e.State, e.Msg)
}
