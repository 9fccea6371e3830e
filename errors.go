package creatum

import "errors"

// Contract violations. These are the only errors the core returns; every
// other degenerate input resolves to a no-op or a nil result.
var (
	// ErrNilPixmap is returned when a layer is built without a pixel buffer.
	ErrNilPixmap = errors.New("creatum: nil pixmap")

	// ErrNilLayer is returned when a nil layer is handed to the stack.
	ErrNilLayer = errors.New("creatum: nil layer")
)
