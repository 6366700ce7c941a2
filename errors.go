package flowengine

import "github.com/circlesnet/flowengine/postflow"

// ErrInvariantViolation indicates ComputeFlow's internal state broke an
// invariant that a correctly-formed EdgeDB can never produce — a missing
// Balance→Trust entry during extraction, or an arithmetic overflow in the
// send-to-owner sum recovered at this package's boundary. Per spec §7
// these are bugs, not recoverable caller errors, so callers should treat
// them as fail-fast signals rather than retry.
var ErrInvariantViolation = postflow.ErrInvariantViolation
