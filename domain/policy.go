package domain

// PolicyConfig holds the credit policy constants. The evaluator is a pure
// function of the application and this config, so a policy change never
// touches the algorithm.
type PolicyConfig struct {
	MinBureauScore      int
	MaxObligationRatio  float64
	NominalAnnualRate   float64
	DefaultTenureMonths int
}

// DefaultPolicy returns the reference credit policy: minimum bureau score 700,
// obligation ratio capped at 50%, installments projected at 14% p.a., and a
// 12-month tenure substituted when the caller supplies zero.
func DefaultPolicy() PolicyConfig {
	return PolicyConfig{
		MinBureauScore:      700,
		MaxObligationRatio:  0.50,
		NominalAnnualRate:   0.14,
		DefaultTenureMonths: 12,
	}
}
