// Package ordering computes the sibling shifts needed to keep an
// owner's folder positions dense when one folder moves. Pure
// computation, no I/O; the repository layer applies the result as a
// single set-based update.
package ordering

import (
	"linkloud/internal/domain"
)

// Plan describes how to rearrange an owner's folders for one move:
// every sibling whose position falls in [Lo, Hi) shifts by Delta, and
// the moved folder lands on Position. The moved folder itself is
// excluded from the range by the caller.
type Plan struct {
	Lo       int // inclusive lower bound of the sibling range
	Hi       int // exclusive upper bound of the sibling range
	Delta    int // +1 or -1, 0 for a no-op
	Position int // final position of the moved folder
}

// Empty reports whether the plan changes nothing (move to the current
// position).
func (p Plan) Empty() bool {
	return p.Delta == 0
}

// Compute builds the shift plan for moving a folder from current to
// requested among liveCount densely-ordered folders.
//
// Moving toward the front shifts the siblings in [requested, current)
// up by one; moving toward the back shifts the siblings in
// (current, requested] down by one. In both cases exactly the folders
// the move passes over shift, closing the gap the folder leaves and
// opening a slot at its destination, so density is preserved by
// construction.
//
// A requested position outside [0, liveCount) violates the caller's
// contract and is rejected with a domain.PositionError.
func Compute(liveCount, current, requested int) (Plan, error) {
	if requested < 0 || requested >= liveCount {
		return Plan{}, &domain.PositionError{Requested: requested, Count: liveCount}
	}

	switch {
	case requested == current:
		return Plan{Position: current}, nil
	case requested < current:
		return Plan{Lo: requested, Hi: current, Delta: +1, Position: requested}, nil
	default:
		// (current, requested] expressed half-open
		return Plan{Lo: current + 1, Hi: requested + 1, Delta: -1, Position: requested}, nil
	}
}
