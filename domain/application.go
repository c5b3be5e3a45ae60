package domain

// LoanApplication carries the verified financial facts and requested terms
// for one underwriting evaluation. Monetary amounts are whole currency units.
type LoanApplication struct {
	BureauScore                int   `json:"bureau_score"`
	AnnualIncome               int64 `json:"annual_income"`
	ExistingMonthlyObligations int64 `json:"existing_monthly_obligations"`
	RequestedAmount            int64 `json:"requested_amount"`
	RequestedTenureMonths      int   `json:"requested_tenure_months"`
}
