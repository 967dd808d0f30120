package baiparser

import (
	"fmt"
	"io"

	"fjacquet/bai-csv/internal/logging"
	"fjacquet/bai-csv/internal/models"
)

// Parse reads a complete BAI transmission from the reader and converts it
// into the document model. The reader is consumed to completion first; the
// pipeline itself operates on the in-memory buffer.
func Parse(r io.Reader, logger logging.Logger) (*models.File, error) {
	return ParseWithOptions(r, Options{}, logger)
}

// ParseWithOptions is Parse with explicit conversion options.
func ParseWithOptions(r io.Reader, opts Options, logger logging.Logger) (*models.File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return ParseBytesWithOptions(data, opts, logger)
}

// ParseBytes converts a complete in-memory BAI transmission into the
// document model. On any error, including a truncated transmission, no
// partial document is returned.
func ParseBytes(data []byte, logger logging.Logger) (*models.File, error) {
	return ParseBytesWithOptions(data, Options{}, logger)
}

// ParseBytesWithOptions is ParseBytes with explicit conversion options.
func ParseBytesWithOptions(data []byte, opts Options, logger logging.Logger) (*models.File, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	logger.Debug("Parsing BAI transmission",
		logging.Field{Key: "bytes", Value: len(data)})

	raws, err := lexRecords(data)
	if err != nil {
		return nil, err
	}

	cv := newConverter(opts, logger)
	for _, raw := range raws {
		rec, err := decodeRecord(raw)
		if err != nil {
			return nil, err
		}
		if err := cv.feed(rec); err != nil {
			return nil, err
		}
	}
	file, err := cv.finish()
	if err != nil {
		return nil, err
	}

	logger.Info("Parsed BAI transmission",
		logging.Field{Key: logging.FieldRecords, Value: len(raws)},
		logging.Field{Key: logging.FieldGroups, Value: len(file.Groups)})
	return file, nil
}
