package renderer

import "errors"

// Camera configuration errors returned by NewCamera. Callers can match them
// with errors.Is; the returned error carries the offending value.
var (
	ErrInvalidWidth         = errors.New("renderer: image width must be positive")
	ErrInvalidAspectRatio   = errors.New("renderer: aspect ratio must be positive")
	ErrInvalidSamples       = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidMaxDepth      = errors.New("renderer: max depth must not be negative")
	ErrInvalidFocusDistance = errors.New("renderer: focus distance must be positive")
	ErrInvalidFieldOfView   = errors.New("renderer: vertical field of view must be in (0, 180)")
	ErrDegenerateView       = errors.New("renderer: camera basis is degenerate")
	ErrNilWorld             = errors.New("renderer: world is nil")
)
