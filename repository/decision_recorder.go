package repository

import "credflow/domain"

// DecisionRecorder receives every underwriting decision for audit purposes.
// Recording is best-effort from the evaluator's point of view; a failure
// never alters the decision itself.
type DecisionRecorder interface {
	Record(app domain.LoanApplication, decision domain.PolicyDecision) error
}
