// errors.go — sentinel errors for the orderengine package.
//
// Error policy:
//   - Only sentinel variables are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.

package orderengine

import "errors"

// ErrNotOrdinaryEdge is returned by Insert when the supplied hyperedge does
// not have exactly two endpoints. The order-based engine only supports
// ordinary graphs, and rejects anything wider at load time rather than
// silently degrading.
var ErrNotOrdinaryEdge = errors.New("orderengine: edge must have exactly two endpoints")
