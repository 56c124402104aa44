package ingest

import "errors"

var (
	ErrMissingColumn     = errors.New("missing required column")
	ErrEmptyInput        = errors.New("input has no header row")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrInvalidRecord     = errors.New("invalid record")
)
