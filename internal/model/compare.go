package model

// CompareQuery is the desired configuration a user ranks issuers against.
// Only Country gates results; every other field is a soft preference.
type CompareQuery struct {
	Country      string       `json:"country,omitempty"`
	Network      Network      `json:"network,omitempty"`
	CustomerType CustomerType `json:"customer_type,omitempty"`
	CustodyModel CustodyModel `json:"custody_model,omitempty"`
	Stablecoin   Stablecoin   `json:"stablecoin,omitempty"`
	Chain        Chain        `json:"chain,omitempty"`
	KYC          KYCKYB       `json:"kyc,omitempty"`
	CardType     CardType     `json:"card_type,omitempty"`
}

type MatchReason struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Score   int    `json:"score"`
}

type ComparisonResult struct {
	Issuer  Issuer        `json:"issuer"`
	Score   int           `json:"score"`
	Reasons []MatchReason `json:"reasons"`
	Missing []string      `json:"missing"`
}

type CompareResponse struct {
	Matches []ComparisonResult `json:"matches"`
	Query   CompareQuery       `json:"query"`
}
