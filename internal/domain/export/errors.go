package export

import "errors"

var (
	// ErrExportNotFound is returned when an export is not found or has expired
	ErrExportNotFound = errors.New("export not found")

	// ErrExportNotReady is returned when downloading an export that has no
	// artifact yet or failed to generate one
	ErrExportNotReady = errors.New("export not ready")
)
