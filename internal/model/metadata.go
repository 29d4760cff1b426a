package model

type MetadataResponse struct {
	Roles              []Role          `json:"roles"`
	Networks           []Network       `json:"networks"`
	CardTypes          []CardType      `json:"card_types"`
	CustomerTypes      []CustomerType  `json:"customer_types"`
	CustodyModels      []CustodyModel  `json:"custody_models"`
	FundingSources     []FundingSource `json:"funding_sources"`
	Stablecoins        []Stablecoin    `json:"stablecoins"`
	Chains             []Chain         `json:"chains"`
	KYCKYBOptions      []KYCKYB        `json:"kyc_kyb_options"`
	ConfidenceLevels   []Confidence    `json:"confidence_levels"`
	SupportedCountries []string        `json:"supported_countries"`
}
