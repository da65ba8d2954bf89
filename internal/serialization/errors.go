package serialization

import "errors"

// Sentinel errors for file-level failures. Wrapped with context by the
// reader and writer; match with errors.Is.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrHeaderTooLarge     = errors.New("header exceeds maximum size")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrOutOfBounds        = errors.New("tensor extends beyond data section")
	ErrSizeMismatch       = errors.New("tensor size does not match its shape and dtype")
)
