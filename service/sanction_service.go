package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"credflow/domain"
	"credflow/storage"
)

// SanctionService renders the sanction letter for an approved loan and
// uploads it to the document store. It runs strictly after the decision:
// a failure here never alters the approval it documents.
type SanctionService struct {
	store      storage.ObjectStore
	quotedRate float64
	logger     *slog.Logger
	now        func() time.Time
}

type SanctionOption func(*SanctionService)

// WithQuotedRate sets the nominal annual rate quoted in the letter body.
func WithQuotedRate(rate float64) SanctionOption {
	return func(s *SanctionService) {
		s.quotedRate = rate
	}
}

// WithClock overrides the letter date source.
func WithClock(now func() time.Time) SanctionOption {
	return func(s *SanctionService) {
		s.now = now
	}
}

func WithSanctionLogger(logger *slog.Logger) SanctionOption {
	return func(s *SanctionService) {
		s.logger = logger
	}
}

func NewSanctionService(store storage.ObjectStore, opts ...SanctionOption) *SanctionService {
	s := &SanctionService{
		store:      store,
		quotedRate: domain.DefaultPolicy().NominalAnnualRate,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue renders and stores the sanction letter, retrying transient upload
// failures with Fibonacci backoff, and returns the document reference.
func (s *SanctionService) Issue(
	ctx context.Context,
	customerName string,
	terms domain.ApprovedTerms,
) (domain.SanctionLetter, error) {

	if strings.TrimSpace(customerName) == "" {
		return domain.SanctionLetter{}, domain.NewValidationError("customer_name", "must not be empty")
	}

	generatedAt := s.now()
	body := renderSanctionLetter(customerName, terms, s.quotedRate, generatedAt)

	key := fmt.Sprintf("%s%s_%s_%s.txt",
		sanctionKeyPrefix,
		strings.ReplaceAll(customerName, " ", "_"),
		generatedAt.Format("200601021504"),
		uuid.NewString(),
	)

	var url string
	backoff := retry.NewFibonacci(500 * time.Millisecond)
	err := retry.Do(ctx, retry.WithMaxRetries(3, backoff), func(ctx context.Context) error {
		stored, err := s.store.Put(ctx, key, []byte(body))
		if err != nil {
			s.logger.Warn("sanction letter upload failed, will retry", "key", key, "error", err)
			return retry.RetryableError(err)
		}
		url = stored
		return nil
	})
	if err != nil {
		return domain.SanctionLetter{}, fmt.Errorf("store sanction letter: %w", err)
	}

	return domain.SanctionLetter{
		Key:         key,
		URL:         url,
		GeneratedAt: generatedAt,
	}, nil
}

func renderSanctionLetter(
	customerName string,
	terms domain.ApprovedTerms,
	quotedRate float64,
	date time.Time,
) string {
	var b strings.Builder

	b.WriteString("Loan Sanction Letter\n\n")
	fmt.Fprintf(&b, "Date: %s\n\n", date.Format("2006-01-02"))
	fmt.Fprintf(&b, "Dear %s,\n\n", customerName)
	b.WriteString("We are pleased to inform you that your personal loan application has been approved.\n\n")
	b.WriteString("Here are the details of your sanction:\n\n")
	fmt.Fprintf(&b, "Approved Loan Amount: INR %d\n", terms.Amount)
	fmt.Fprintf(&b, "Loan Tenure: %d months\n", terms.TenureMonths)
	fmt.Fprintf(&b, "Equated Monthly Installment (EMI): INR %d\n", terms.Installment)
	fmt.Fprintf(&b, "Interest Rate: %.0f%% p.a. (reducing)\n\n", quotedRate*100)
	b.WriteString("This offer is valid for 7 days. Please contact us to complete the disbursal process.\n\n")
	b.WriteString("We look forward to serving you.\n\n")
	b.WriteString("Sincerely,\nThe CredFlow Team\n")

	return b.String()
}
