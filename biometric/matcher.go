package biometric

import "github.com/smarttech/storefront/common"

// Candidate pairs an enrolled descriptor with the id of its owning user.
type Candidate struct {
	UserID     string
	Descriptor Descriptor
}

// Result is the outcome of a matching round. BestDistance always carries the
// smallest distance seen, for diagnostics, even when it failed the threshold.
type Result struct {
	Matched      bool
	UserID       string
	BestDistance float64
}

// BestMatch evaluates the live descriptor against every candidate and applies
// the threshold decision rule: the minimum distance wins if it is strictly
// below threshold. Ties at the minimum resolve to whichever candidate was
// evaluated first, so the outcome is deterministic in the input order.
//
// An empty candidate set returns common.ErrNoEnrollments. A candidate whose
// stored descriptor has the wrong length returns ErrDimensionMismatch.
//
// BestMatch is a pure function: it never touches the store.
func BestMatch(live Descriptor, candidates []Candidate, threshold float64) (Result, error) {
	if len(candidates) == 0 {
		return Result{}, common.ErrNoEnrollments
	}

	best := Result{BestDistance: 0}
	first := true
	for _, c := range candidates {
		d, err := Distance(live, c.Descriptor)
		if err != nil {
			return Result{}, err
		}
		if first || d < best.BestDistance {
			best.BestDistance = d
			best.UserID = c.UserID
			first = false
		}
	}

	if best.BestDistance < threshold {
		best.Matched = true
		return best, nil
	}
	return Result{Matched: false, BestDistance: best.BestDistance}, nil
}
