package meta

import "errors"

// Error taxonomy for the extraction core.
var (
	// ErrUnreadableDocument means normalization received unusable input.
	// Fatal for the document: no metadata is produced.
	ErrUnreadableDocument = errors.New("unreadable document")

	// ErrUnsupportedFormat means an export was requested in a format
	// other than json, xml or txt. Stored metadata is untouched.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrNotFound means no extraction result exists for the identifier.
	ErrNotFound = errors.New("metadata not found")
)
