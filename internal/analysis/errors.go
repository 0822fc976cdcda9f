package analysis

import "errors"

// ErrNotFound is returned when an analysis does not exist or belongs to
// another user.
var ErrNotFound = errors.New("analysis not found")

// ErrInvalidInput marks request validation failures.
var ErrInvalidInput = errors.New("invalid input")

// ErrAnalysisFailed is returned when the assessment text carries a known
// failure marker. This is the one parse outcome the caller must surface
// instead of degrading to defaults.
var ErrAnalysisFailed = errors.New("analysis failed")

// ErrUpstreamUnavailable is returned when the vision provider cannot be
// reached or rejects the request.
var ErrUpstreamUnavailable = errors.New("vision provider unavailable")
