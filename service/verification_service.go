package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"credflow/domain"
	"credflow/repository"
)

// VerificationService resolves an applicant's phone number against the CRM
// directory and enforces the KYC check. Verified profiles are cached so
// repeat lookups in the same session skip the directory.
type VerificationService struct {
	directory repository.CustomerDirectory
	cache     repository.CacheRepository
	logger    *slog.Logger
}

type VerificationOption func(*VerificationService)

func WithVerificationLogger(logger *slog.Logger) VerificationOption {
	return func(s *VerificationService) {
		s.logger = logger
	}
}

// NewVerificationService creates a verification service. The cache may be nil.
func NewVerificationService(
	directory repository.CustomerDirectory,
	cache repository.CacheRepository,
	opts ...VerificationOption,
) *VerificationService {
	s := &VerificationService{
		directory: directory,
		cache:     cache,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Verify returns the verified profile for the phone number, or an error:
// a *domain.ValidationError for a malformed number, domain.ErrCustomerNotFound
// when the directory has no profile, domain.ErrKYCNotVerified when the
// profile exists but KYC is incomplete.
func (s *VerificationService) Verify(
	ctx context.Context,
	phoneNumber string,
) (domain.CustomerProfile, error) {

	if !isValidPhoneNumber(phoneNumber) {
		return domain.CustomerProfile{}, domain.NewValidationError("phone_number",
			fmt.Sprintf("must be a %d-digit number", PhoneNumberLength))
	}

	cacheKey := profileCacheKeyPrefix + phoneNumber
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, cacheKey); ok {
			var profile domain.CustomerProfile
			if err := json.Unmarshal([]byte(raw), &profile); err == nil && profile.KYCVerified {
				return profile, nil
			}
			s.logger.Warn("discarding unusable cached profile", "phone_number", phoneNumber)
		}
	}

	profile, err := s.directory.ResolveByPhone(ctx, phoneNumber)
	if err != nil {
		return domain.CustomerProfile{}, fmt.Errorf("no customer profile for %s: %w",
			phoneNumber, err)
	}

	if !profile.KYCVerified {
		return domain.CustomerProfile{}, fmt.Errorf("customer %s found: %w",
			profile.FullName, domain.ErrKYCNotVerified)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(profile); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(raw)); err != nil {
				s.logger.Warn("failed to cache verified profile", "error", err)
			}
		}
	}

	return profile, nil
}

func isValidPhoneNumber(phoneNumber string) bool {
	if len(phoneNumber) != PhoneNumberLength {
		return false
	}
	for _, c := range phoneNumber {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
