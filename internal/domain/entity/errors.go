package entity

import "errors"

var (
	// ErrInvalidFontFile marks a file with an unknown extension or a failed signature sniff.
	ErrInvalidFontFile = errors.New("invalid font file")
	// ErrDuplicateFont marks an import whose family is already installed.
	ErrDuplicateFont = errors.New("font already installed")
	// ErrFontNotFound is returned when an id does not match any record.
	ErrFontNotFound = errors.New("font not found")
	// ErrStorageFailure wraps object storage put/remove/get failures.
	ErrStorageFailure = errors.New("font storage failure")
	// ErrPersistenceFailure wraps settings load/save failures.
	ErrPersistenceFailure = errors.New("settings persistence failure")
	// ErrAssetUnavailable means a record's binary could not be turned into a style reference.
	ErrAssetUnavailable = errors.New("font asset unavailable")
	// ErrReadOnly is returned for management actions while the host is read-only.
	ErrReadOnly = errors.New("host is read-only")
)
