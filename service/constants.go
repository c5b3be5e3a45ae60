package service

const (
	MaxLoanAmount   = 1_000_000_000 // sanity cap on the requested principal
	MaxAnnualIncome = 10_000_000_000
	MaxBureauScore  = 900

	PhoneNumberLength = 10

	profileCacheKeyPrefix = "customer:"
	sanctionKeyPrefix     = "sanction_letters/"
)
