// errors.go — sentinel errors for the hypergraph package.
//
// Error policy:
//   - Only sentinel variables are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.

package hypergraph

import "errors"

// ErrEdgeNotFound is returned by Delete when no live edge matches the
// requested value. This indicates a caller precondition violation — the
// update stream promised a prior insertion — and is treated as fatal by
// engines, not a recoverable condition.
var ErrEdgeNotFound = errors.New("hypergraph: edge not found")
