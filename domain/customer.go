package domain

import "time"

// CustomerProfile is what the CRM directory returns for a verified lookup.
type CustomerProfile struct {
	FullName                   string `json:"full_name"`
	PhoneNumber                string `json:"phone_number"`
	AnnualIncome               int64  `json:"annual_income"`
	ExistingMonthlyObligations int64  `json:"existing_monthly_obligations"`
	BureauScore                int    `json:"bureau_score"`
	KYCVerified                bool   `json:"kyc_verified"`
}

// SanctionLetter is the stored document reference confirming approved terms.
type SanctionLetter struct {
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	GeneratedAt time.Time `json:"generated_at"`
}
