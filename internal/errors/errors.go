package errors

import "errors"

// Path errors indicate problems addressing a key path inside the document.
var (
	// ErrInvalidPath indicates the key path is empty or malformed.
	ErrInvalidPath = errors.New("invalid key path")

	// ErrPathNotFound indicates the key path does not exist in the document.
	ErrPathNotFound = errors.New("key path does not exist in config")
)

// List errors indicate problems with list-valued config properties.
var (
	// ErrNotAList indicates the addressed property is not a list.
	ErrNotAList = errors.New("config property is not a list")

	// ErrValueNotFound indicates the value is not present in the addressed list.
	ErrValueNotFound = errors.New("value not found in list")
)

// Persistence errors indicate problems committing a change to disk.
var (
	// ErrLockBusy indicates another perch-config instance holds the config lock.
	ErrLockBusy = errors.New("another instance holds the config lock")

	// ErrValidationFailed indicates the candidate config does not conform to the schema.
	ErrValidationFailed = errors.New("config validation failed")
)
