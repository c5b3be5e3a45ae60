package repository

import (
	"sync"

	"credflow/domain"
)

// RecordedDecision pairs an application with the decision it produced.
type RecordedDecision struct {
	Application domain.LoanApplication
	Decision    domain.PolicyDecision
}

// DecisionRecorderMemory is an in-memory implementation of DecisionRecorder.
type DecisionRecorderMemory struct {
	mu   sync.Mutex
	data []RecordedDecision
}

// NewDecisionRecorderMemory creates a new in-memory decision recorder.
func NewDecisionRecorderMemory() *DecisionRecorderMemory {
	return &DecisionRecorderMemory{
		data: []RecordedDecision{},
	}
}

// Record stores the decision in memory.
func (r *DecisionRecorderMemory) Record(
	app domain.LoanApplication,
	decision domain.PolicyDecision,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, RecordedDecision{Application: app, Decision: decision})
	return nil
}

// All returns a copy of everything recorded so far.
func (r *DecisionRecorderMemory) All() []RecordedDecision {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedDecision, len(r.data))
	copy(out, r.data)
	return out
}
