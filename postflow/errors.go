package postflow

import "errors"

// ErrInvariantViolation indicates that ExtractTransfers encountered a flow
// distribution that violates balance conservation — a caller's EdgeDB
// cannot produce this from a correctly-run Dinic pass, so this is a bug,
// not a recoverable condition (spec §7).
var ErrInvariantViolation = errors.New("postflow: invariant violation during transfer extraction")
