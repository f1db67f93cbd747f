package errs

import "errors"

// Common sentinel errors for cross-layer signaling.
var (
    // ErrNotFound is returned by every store when no employee has the requested ID.
    ErrNotFound = errors.New("not_found")
    // ErrInvalid marks input rejected by the service layer (HTTP 422).
    ErrInvalid = errors.New("invalid")
)
