package services

import "errors"

var (
	// ErrPayloadDecode means a form-encoded body could not be parsed
	ErrPayloadDecode = errors.New("payload decode")
	// ErrStoreUnavailable means the counter store rejected or failed the increment
	ErrStoreUnavailable = errors.New("store unavailable")
)
