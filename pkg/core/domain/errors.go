package domain

import "errors"

var (
	// ErrNotFound is returned when a short key is absent from the store.
	ErrNotFound = errors.New("link not found")

	// ErrStoreMissing is returned when the store file does not exist.
	// The deployment must be bootstrapped with the init CLI first.
	ErrStoreMissing = errors.New("store file not found")

	// ErrStoreCorrupt is returned when the store file exists but does not
	// parse into a valid store.
	ErrStoreCorrupt = errors.New("store file is corrupt")

	// ErrPersistence is returned when a mutation was applied in memory but
	// could not be written to disk. State is uncertain; callers should
	// retry the operation.
	ErrPersistence = errors.New("failed to persist store")
)
