package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"credflow/domain"
	"credflow/repository"
)

type countingDirectory struct {
	inner *repository.CustomerDirectoryMemory
	calls int
}

func (d *countingDirectory) ResolveByPhone(
	ctx context.Context,
	phoneNumber string,
) (domain.CustomerProfile, error) {
	d.calls++
	return d.inner.ResolveByPhone(ctx, phoneNumber)
}

func verifiedProfile() domain.CustomerProfile {
	return domain.CustomerProfile{
		FullName:                   "Priya Sharma",
		PhoneNumber:                "9876543210",
		AnnualIncome:               1_200_000,
		ExistingMonthlyObligations: 10_000,
		BureauScore:                750,
		KYCVerified:                true,
	}
}

func TestVerify_ReturnsVerifiedProfile(t *testing.T) {
	directory := repository.NewCustomerDirectoryMemory(verifiedProfile())
	cache := repository.NewMockCache()
	s := NewVerificationService(directory, cache)

	profile, err := s.Verify(context.Background(), "9876543210")

	require.NoError(t, err)
	assert.Equal(t, verifiedProfile(), profile)

	// The verified profile is cached for repeat lookups.
	raw, ok := cache.Data["customer:9876543210"]
	require.True(t, ok)
	var cached domain.CustomerProfile
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, profile, cached)
}

func TestVerify_CacheSkipsDirectory(t *testing.T) {
	directory := &countingDirectory{inner: repository.NewCustomerDirectoryMemory(verifiedProfile())}
	cache := repository.NewMockCache()
	s := NewVerificationService(directory, cache)

	_, err := s.Verify(context.Background(), "9876543210")
	require.NoError(t, err)
	require.Equal(t, 1, directory.calls)

	profile, err := s.Verify(context.Background(), "9876543210")
	require.NoError(t, err)
	assert.Equal(t, verifiedProfile(), profile)
	assert.Equal(t, 1, directory.calls, "second lookup must be served from the cache")
}

func TestVerify_CorruptCacheEntryFallsBack(t *testing.T) {
	directory := &countingDirectory{inner: repository.NewCustomerDirectoryMemory(verifiedProfile())}
	cache := repository.NewMockCache()
	cache.Data["customer:9876543210"] = "{not json"
	s := NewVerificationService(directory, cache)

	profile, err := s.Verify(context.Background(), "9876543210")

	require.NoError(t, err)
	assert.Equal(t, verifiedProfile(), profile)
	assert.Equal(t, 1, directory.calls)
}

func TestVerify_InvalidPhoneNumber(t *testing.T) {
	directory := repository.NewCustomerDirectoryMemory(verifiedProfile())
	s := NewVerificationService(directory, nil)

	for _, phone := range []string{"", "12345", "98765432101", "98765abcde"} {
		_, err := s.Verify(context.Background(), phone)
		require.Error(t, err, "phone %q", phone)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "phone_number", verr.Field)
	}
}

func TestVerify_CustomerNotFound(t *testing.T) {
	directory := repository.NewCustomerDirectoryMemory()
	s := NewVerificationService(directory, nil)

	_, err := s.Verify(context.Background(), "9876543210")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestVerify_KYCNotVerified(t *testing.T) {
	profile := verifiedProfile()
	profile.KYCVerified = false
	directory := repository.NewCustomerDirectoryMemory(profile)
	s := NewVerificationService(directory, nil)

	_, err := s.Verify(context.Background(), "9876543210")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrKYCNotVerified)
	assert.Contains(t, err.Error(), "Priya Sharma")
}
