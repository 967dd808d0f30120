// Package baiparser converts a BAI cash-management transmission into the
// document model. The pipeline has two stages: a record lexer/decoder that
// turns each physical line into a typed record, and a conversion state
// machine that assembles the ordered records into the file/group/account
// hierarchy. Both stages abort on the first error.
package baiparser

import (
	"strings"

	"fjacquet/bai-csv/internal/parsererror"
)

// Record type codes of the format. Anything else is a lexical error; the
// format has no forward-compatible unknown-record provision.
const (
	codeFileHeader        = "01"
	codeGroupHeader       = "02"
	codeAccountIdent      = "03"
	codeTransactionDetail = "16"
	codeAccountTrailer    = "49"
	codeContinuation      = "88"
	codeGroupTrailer      = "98"
	codeFileTrailer       = "99"
)

var knownTypeCodes = map[string]bool{
	codeFileHeader:        true,
	codeGroupHeader:       true,
	codeAccountIdent:      true,
	codeTransactionDetail: true,
	codeAccountTrailer:    true,
	codeContinuation:      true,
	codeGroupTrailer:      true,
	codeFileTrailer:       true,
}

// recordTerminator closes every record on the wire.
const recordTerminator = "/"

// rawRecord is one physical line split into its type code and field list,
// before any field-level decoding.
type rawRecord struct {
	code   string
	fields []string
	line   int // 1-based physical line number
}

// lexRecords splits the input buffer into raw records. One line is one
// record: a two-digit type code, comma-delimited fields, and the terminating
// marker. Trailing whitespace is ignored and fully blank lines are padding.
func lexRecords(data []byte) ([]rawRecord, error) {
	var records []rawRecord
	lines := strings.Split(string(data), "\n")
	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, " \t\r")
		if line == "" {
			continue
		}
		if !strings.HasSuffix(line, recordTerminator) {
			return nil, &parsererror.LexicalError{
				Line:    lineNo,
				Snippet: snippet(line),
				Msg:     "record is missing the '/' terminator",
			}
		}
		parts := strings.Split(strings.TrimSuffix(line, recordTerminator), ",")
		code := parts[0]
		if len(code) != 2 || !isDigits(code) {
			return nil, &parsererror.LexicalError{
				Line:    lineNo,
				Snippet: snippet(line),
				Msg:     "record does not start with a two-digit type code",
			}
		}
		if !knownTypeCodes[code] {
			return nil, &parsererror.LexicalError{
				Line:    lineNo,
				Snippet: snippet(line),
				Msg:     "unrecognized record type code '" + code + "'",
			}
		}
		records = append(records, rawRecord{
			code:   code,
			fields: parts[1:],
			line:   lineNo,
		})
	}
	return records, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func snippet(line string) string {
	const max = 40
	if len(line) > max {
		return line[:max] + "..."
	}
	return line
}
