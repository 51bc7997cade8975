package models

// CreditBalance is the success payload of the credit-balance endpoint.
// The expiry arrives as epoch seconds.
type CreditBalance struct {
	CurrentCredit       float32 `json:"current_credit"`
	CreditExpiresAt     int64   `json:"credit_expires_at"`
	CreditSpentIn30Days float32 `json:"credit_spent_in_30_days"`
}
