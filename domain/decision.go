package domain

// Outcome is the closed set of underwriting results.
type Outcome string

const (
	OutcomeApproved          Outcome = "approved"
	OutcomeRejected          Outcome = "rejected"
	OutcomeNeedsManualReview Outcome = "needs_manual_review"
)

// InstallmentProjection holds the figures behind an obligation-ratio check.
// Degraded marks projections that came from the simplified fallback instead
// of the amortizing formula.
type InstallmentProjection struct {
	Installment     int64   `json:"installment"`
	ObligationRatio float64 `json:"obligation_ratio"`
	Degraded        bool    `json:"degraded"`
}

// ApprovedTerms are the sanctioned loan terms, exactly as evaluated.
type ApprovedTerms struct {
	Amount       int64 `json:"amount"`
	TenureMonths int   `json:"tenure_months"`
	Installment  int64 `json:"installment"`
}

// PolicyDecision is the result of one evaluation. Projection is nil when the
// score gate stopped the evaluation; ApprovedTerms is set only on approval.
type PolicyDecision struct {
	Outcome       Outcome                `json:"outcome"`
	Rationale     string                 `json:"rationale"`
	Projection    *InstallmentProjection `json:"projection,omitempty"`
	ApprovedTerms *ApprovedTerms         `json:"approved_terms,omitempty"`
}
