package fluid

import "errors"

var (
	ErrRandomSource  = errors.New("failed to read random source")
	ErrNotRandomUUID = errors.New("uuid is not a random (version 4) uuid")
)
