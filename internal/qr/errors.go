package qr

import "errors"

// Render failures. Every error returned by this package wraps one of these
// with the failing stage's context.
var (
	ErrInvalidColor = errors.New("invalid color")
	ErrEncoding     = errors.New("payload cannot be encoded")
	ErrAssetLoad    = errors.New("asset cannot be loaded")
	ErrIO           = errors.New("output cannot be written")
)
