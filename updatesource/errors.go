// errors.go — sentinel errors for the updatesource package.
//
// Error policy (matches builder's policy in the teacher corpus):
//   - Only sentinel variables are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.

package updatesource

import "errors"

// ErrMalformedRecord is returned when a line has an unrecognized prefix,
// too few tokens, or a non-numeric token, per spec.md §7's fail-fast
// "malformed input" error kind.
var ErrMalformedRecord = errors.New("updatesource: malformed record")

// ErrUnsortedDeletion is returned when a deletion record's endpoints are
// not already in ascending order. The textual encoding requires a deletion
// to name exactly the canonical (sorted) form a prior insertion produced;
// an unsorted deletion line can never match a live edge and is rejected at
// parse time instead of silently failing the later Delete call.
var ErrUnsortedDeletion = errors.New("updatesource: deletion endpoints not sorted ascending")
