package failure

import "errors"

// ErrUnhandled is wrapped by every error returned from Audit.
var ErrUnhandled = errors.New("unhandled validation failure")
