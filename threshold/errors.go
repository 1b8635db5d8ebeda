// errors.go — sentinel errors for the threshold package.
//
// Error policy:
//   - Only sentinel variables are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.

package threshold

import "errors"

// ErrInvalidParameter is returned by New when epsilon, lambda, or alpha is
// not strictly positive. Validation happens once at construction time so
// that Insert/Delete never need to report a parameter error mid-stream.
var ErrInvalidParameter = errors.New("threshold: epsilon, lambda and alpha must be positive")
