package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credflow/domain"
	"credflow/repository"
	"credflow/storage"
)

func newPipeline(t *testing.T, store storage.ObjectStore) *ApplicationService {
	t.Helper()

	directory := repository.NewCustomerDirectoryMemory(verifiedProfile())
	verification := NewVerificationService(directory, repository.NewMockCache())
	underwriting := NewUnderwritingService(domain.DefaultPolicy())
	sanctions := NewSanctionService(store, WithClock(fixedClock))

	return NewApplicationService(verification, underwriting, sanctions)
}

func TestProcess_ApprovedWithLetter(t *testing.T) {
	store := storage.NewMemoryStore()
	pipeline := newPipeline(t, store)

	result, err := pipeline.Process(context.Background(), ApplicationRequest{
		PhoneNumber:           "9876543210",
		RequestedAmount:       500_000,
		RequestedTenureMonths: 36,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ApplicationID)
	assert.Equal(t, "Priya Sharma", result.Customer.FullName)
	assert.Equal(t, domain.OutcomeApproved, result.Decision.Outcome)

	require.NotNil(t, result.Letter)
	assert.Empty(t, result.LetterIssue)
	assert.Contains(t, string(store.Objects[result.Letter.Key]), "INR 500000")
}

func TestProcess_LetterFailureKeepsDecision(t *testing.T) {
	store := &flakyStore{failures: 100, inner: storage.NewMemoryStore()}
	pipeline := newPipeline(t, store)

	result, err := pipeline.Process(context.Background(), ApplicationRequest{
		PhoneNumber:           "9876543210",
		RequestedAmount:       500_000,
		RequestedTenureMonths: 36,
	})

	require.NoError(t, err, "a failed document step must not fail the application")
	assert.Equal(t, domain.OutcomeApproved, result.Decision.Outcome)
	assert.Nil(t, result.Letter)
	assert.NotEmpty(t, result.LetterIssue)
}

func TestProcess_RejectedSkipsLetter(t *testing.T) {
	store := &flakyStore{inner: storage.NewMemoryStore()}
	pipeline := newPipeline(t, store)

	// Large enough to push the obligation ratio over the limit.
	result, err := pipeline.Process(context.Background(), ApplicationRequest{
		PhoneNumber:           "9876543210",
		RequestedAmount:       10_000_000,
		RequestedTenureMonths: 12,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRejected, result.Decision.Outcome)
	assert.Nil(t, result.Letter)
	assert.Zero(t, store.puts, "no letter upload may be attempted for a rejection")
}

func TestProcess_UnknownCustomer(t *testing.T) {
	pipeline := newPipeline(t, storage.NewMemoryStore())

	_, err := pipeline.Process(context.Background(), ApplicationRequest{
		PhoneNumber:           "0000000000",
		RequestedAmount:       500_000,
		RequestedTenureMonths: 36,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
