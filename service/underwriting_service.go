package service

import (
	"fmt"
	"log/slog"
	"math"

	"credflow/domain"
	"credflow/metrics"
	"credflow/repository"
)

// roundToUnit rounds a projected amount half-up to the whole currency unit.
// The same rule is applied everywhere a figure feeds a policy comparison, so
// decisions at the margin stay reproducible.
func roundToUnit(value float64) int64 {
	return int64(math.Round(value))
}

// roundToPercent renders a ratio as a whole percentage, half-up.
func roundToPercent(ratio float64) int64 {
	return int64(math.Round(ratio * 100))
}

// UnderwritingService evaluates loan applications against a fixed credit
// policy. Each call is independent and deterministic; the service holds no
// mutable state and is safe for concurrent use.
type UnderwritingService struct {
	policy   domain.PolicyConfig
	recorder repository.DecisionRecorder
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

type UnderwritingOption func(*UnderwritingService)

// WithDecisionRecorder registers a best-effort audit sink for decisions.
func WithDecisionRecorder(recorder repository.DecisionRecorder) UnderwritingOption {
	return func(s *UnderwritingService) {
		s.recorder = recorder
	}
}

// WithMetrics registers decision counters.
func WithMetrics(m *metrics.Metrics) UnderwritingOption {
	return func(s *UnderwritingService) {
		s.metrics = m
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) UnderwritingOption {
	return func(s *UnderwritingService) {
		s.logger = logger
	}
}

// NewUnderwritingService creates an evaluator bound to the given policy.
func NewUnderwritingService(policy domain.PolicyConfig, opts ...UnderwritingOption) *UnderwritingService {
	s := &UnderwritingService{
		policy: policy,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate applies the two policy gates to the application and returns the
// decision with its supporting figures. It returns an error only for
// malformed input (a *domain.ValidationError naming the offending field);
// every well-formed application produces a decision.
func (s *UnderwritingService) Evaluate(
	app domain.LoanApplication,
) (domain.PolicyDecision, error) {

	if err := validateApplication(app); err != nil {
		return domain.PolicyDecision{}, err
	}

	// A zero tenure means "use the policy default", carried over from the
	// original credit policy.
	tenure := app.RequestedTenureMonths
	if tenure == 0 {
		tenure = s.policy.DefaultTenureMonths
	}

	// Gate 1: bureau score. Score 0 is the "new to credit" sentinel and is
	// checked before the floor so a missing history is never read as a low
	// score.
	if app.BureauScore == 0 {
		return s.finish(app, domain.PolicyDecision{
			Outcome:   domain.OutcomeNeedsManualReview,
			Rationale: "applicant is new to credit (bureau score 0); forwarded for manual underwriting",
		}), nil
	}
	if app.BureauScore < s.policy.MinBureauScore {
		return s.finish(app, domain.PolicyDecision{
			Outcome: domain.OutcomeRejected,
			Rationale: fmt.Sprintf(
				"credit score %d is below the required minimum of %d",
				app.BureauScore, s.policy.MinBureauScore,
			),
		}), nil
	}

	// Gate 2: project the installment and check the obligation ratio.
	installment, degraded := s.projectInstallment(app.RequestedAmount, tenure)

	monthlyIncome := float64(app.AnnualIncome) / 12
	ratio := float64(app.ExistingMonthlyObligations+installment) / monthlyIncome

	projection := &domain.InstallmentProjection{
		Installment:     installment,
		ObligationRatio: ratio,
		Degraded:        degraded,
	}

	ratioPct := roundToPercent(ratio)
	limitPct := roundToPercent(s.policy.MaxObligationRatio)

	// Strictly greater: an application landing exactly on the limit passes.
	if ratio > s.policy.MaxObligationRatio {
		return s.finish(app, domain.PolicyDecision{
			Outcome: domain.OutcomeRejected,
			Rationale: degradedNote(fmt.Sprintf(
				"obligation ratio would be %d%%, above the %d%% limit",
				ratioPct, limitPct,
			), degraded),
			Projection: projection,
		}), nil
	}

	return s.finish(app, domain.PolicyDecision{
		Outcome: domain.OutcomeApproved,
		Rationale: degradedNote(fmt.Sprintf(
			"loan of %d approved over %d months; obligation ratio %d%% is within the %d%% limit",
			app.RequestedAmount, tenure, ratioPct, limitPct,
		), degraded),
		Projection: projection,
		ApprovedTerms: &domain.ApprovedTerms{
			Amount:       app.RequestedAmount,
			TenureMonths: tenure,
			Installment:  installment,
		},
	}), nil
}

// projectInstallment computes the monthly payment for the requested principal
// at the policy's nominal rate using the standard amortizing-loan formula.
// When the formula is not evaluable (float overflow at pathological tenures)
// it falls back to a simple flat projection and reports it as degraded.
func (s *UnderwritingService) projectInstallment(principal int64, tenure int) (int64, bool) {
	monthlyRate := s.policy.NominalAnnualRate / 12
	p := float64(principal)
	n := float64(tenure)

	var raw float64
	if monthlyRate > 0 {
		growth := math.Pow(1+monthlyRate, n)
		raw = p * monthlyRate * growth / (growth - 1)
	} else {
		raw = p / n
	}

	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		fallback := p * (1 + s.policy.NominalAnnualRate) / n
		s.logger.Warn("amortization formula not evaluable, using flat fallback projection",
			"principal", principal,
			"tenure_months", tenure,
		)
		return roundToUnit(fallback), true
	}
	return roundToUnit(raw), false
}

func validateApplication(app domain.LoanApplication) error {
	if app.BureauScore < 0 || app.BureauScore > MaxBureauScore {
		return domain.NewValidationError("bureau_score",
			fmt.Sprintf("must be between 0 and %d", MaxBureauScore))
	}
	if app.AnnualIncome <= 0 {
		return domain.NewValidationError("annual_income", "must be positive")
	}
	if app.AnnualIncome > MaxAnnualIncome {
		return domain.NewValidationError("annual_income",
			fmt.Sprintf("exceeds the maximum of %d", int64(MaxAnnualIncome)))
	}
	if app.ExistingMonthlyObligations < 0 {
		return domain.NewValidationError("existing_monthly_obligations", "must not be negative")
	}
	if app.RequestedAmount <= 0 {
		return domain.NewValidationError("requested_amount", "must be positive")
	}
	if app.RequestedAmount > MaxLoanAmount {
		return domain.NewValidationError("requested_amount",
			fmt.Sprintf("exceeds the maximum of %d", int64(MaxLoanAmount)))
	}
	if app.RequestedTenureMonths < 0 {
		return domain.NewValidationError("requested_tenure_months", "must not be negative")
	}
	return nil
}

// finish records the decision and counts it; neither step can change it.
func (s *UnderwritingService) finish(
	app domain.LoanApplication,
	decision domain.PolicyDecision,
) domain.PolicyDecision {
	if s.recorder != nil {
		if err := s.recorder.Record(app, decision); err != nil {
			s.logger.Warn("failed to record decision", "error", err)
		}
	}
	if s.metrics != nil {
		s.metrics.ObserveDecision(string(decision.Outcome))
		if decision.Projection != nil && decision.Projection.Degraded {
			s.metrics.ObserveDegradedProjection()
		}
	}
	return decision
}

func degradedNote(rationale string, degraded bool) string {
	if degraded {
		return rationale + " (installment projected with simplified fallback)"
	}
	return rationale
}
