package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"credflow/domain"
)

// ApplicationRequest is what the caller has gathered from the applicant.
type ApplicationRequest struct {
	PhoneNumber           string
	RequestedAmount       int64
	RequestedTenureMonths int
}

// ApplicationResult is the outcome of one pass through the pipeline. Letter
// is set only when the loan was approved and the document step succeeded;
// when that step fails, LetterIssue carries the failure and the decision
// stands untouched.
type ApplicationResult struct {
	ApplicationID string
	Customer      domain.CustomerProfile
	Decision      domain.PolicyDecision
	Letter        *domain.SanctionLetter
	LetterIssue   string
}

// ApplicationService runs the loan pipeline: verify the applicant, evaluate
// the application, and document the approval. Conversation handling stays
// with the caller; this is the sequence of steps behind it.
type ApplicationService struct {
	verification *VerificationService
	underwriting *UnderwritingService
	sanctions    *SanctionService
	logger       *slog.Logger
}

type ApplicationOption func(*ApplicationService)

func WithApplicationLogger(logger *slog.Logger) ApplicationOption {
	return func(s *ApplicationService) {
		s.logger = logger
	}
}

func NewApplicationService(
	verification *VerificationService,
	underwriting *UnderwritingService,
	sanctions *SanctionService,
	opts ...ApplicationOption,
) *ApplicationService {
	s := &ApplicationService{
		verification: verification,
		underwriting: underwriting,
		sanctions:    sanctions,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process runs one application through the pipeline.
func (s *ApplicationService) Process(
	ctx context.Context,
	req ApplicationRequest,
) (ApplicationResult, error) {

	profile, err := s.verification.Verify(ctx, req.PhoneNumber)
	if err != nil {
		return ApplicationResult{}, err
	}

	app := domain.LoanApplication{
		BureauScore:                profile.BureauScore,
		AnnualIncome:               profile.AnnualIncome,
		ExistingMonthlyObligations: profile.ExistingMonthlyObligations,
		RequestedAmount:            req.RequestedAmount,
		RequestedTenureMonths:      req.RequestedTenureMonths,
	}

	decision, err := s.underwriting.Evaluate(app)
	if err != nil {
		return ApplicationResult{}, err
	}

	result := ApplicationResult{
		ApplicationID: uuid.NewString(),
		Customer:      profile,
		Decision:      decision,
	}

	if decision.Outcome == domain.OutcomeApproved {
		letter, err := s.sanctions.Issue(ctx, profile.FullName, *decision.ApprovedTerms)
		if err != nil {
			// The decision about money is final; a missing document does
			// not roll it back.
			s.logger.Warn("sanction letter could not be issued",
				"application_id", result.ApplicationID,
				"error", err,
			)
			result.LetterIssue = err.Error()
		} else {
			result.Letter = &letter
		}
	}

	return result, nil
}
