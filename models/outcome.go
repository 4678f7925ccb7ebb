package models

// RemovalStatus classifies the result of removing a single friend.
type RemovalStatus int

const (
	// RemovalSucceeded means the friend was removed.
	RemovalSucceeded RemovalStatus = iota

	// RemovalAlreadyAbsent means the friendship no longer existed.
	// Removal is idempotent, so this counts as success.
	RemovalAlreadyAbsent

	// RemovalFailed means the remove call failed; Reason holds why.
	RemovalFailed
)

// RemovalOutcome records the result of one remove attempt. The bulk remover
// produces exactly one outcome per submitted target, in input order,
// regardless of individual failures.
type RemovalOutcome struct {
	// AccountID is the canonical id of the target.
	AccountID string

	// Status classifies the attempt.
	Status RemovalStatus

	// Reason describes the failure; empty unless Status is RemovalFailed.
	Reason string
}

// OK reports whether the outcome counts as success. AlreadyAbsent is
// success-equivalent.
func (o RemovalOutcome) OK() bool {
	return o.Status != RemovalFailed
}

// RemovalFailure pairs a failed target with the reason reported for it.
type RemovalFailure struct {
	AccountID string
	Reason    string
}

// RemovalReport aggregates a full bulk-removal run.
// len(Successes)+len(Failures) always equals the number of submitted targets.
type RemovalReport struct {
	// Successes lists targets that were removed (or already absent),
	// in input order.
	Successes []string

	// Failures lists targets whose removal failed, in input order.
	Failures []RemovalFailure
}
