package model

import "strings"

type Region struct {
	Code  string `json:"code" yaml:"code" validate:"required,len=2"`
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

type Issuer struct {
	ID               string          `json:"id" yaml:"id" validate:"required"`
	Name             string          `json:"name" yaml:"name" validate:"required"`
	Website          string          `json:"website" yaml:"website" validate:"required"`
	Roles            []Role          `json:"roles" yaml:"roles" validate:"required,dive,enum"`
	Networks         []Network       `json:"networks" yaml:"networks" validate:"required,dive,enum"`
	CardTypes        []CardType      `json:"card_types" yaml:"card_types" validate:"required,dive,enum"`
	RegionsSupported []Region        `json:"regions_supported" yaml:"regions_supported" validate:"required,dive"`
	CustomerType     []CustomerType  `json:"customer_type" yaml:"customer_type" validate:"required,dive,enum"`
	CustodyModel     CustodyModel    `json:"custody_model" yaml:"custody_model" validate:"required,enum"`
	FundingSources   []FundingSource `json:"funding_sources" yaml:"funding_sources" validate:"required,dive,enum"`
	Stablecoins      []Stablecoin    `json:"stablecoins" yaml:"stablecoins" validate:"required,dive,enum"`
	Chains           []Chain         `json:"chains" yaml:"chains" validate:"required,dive,enum"`
	KYCKYB           KYCKYB          `json:"kyc_kyb" yaml:"kyc_kyb" validate:"required,enum"`
	PricingModel     []string        `json:"pricing_model" yaml:"pricing_model" validate:"required"`
	APIMaturity      int             `json:"api_maturity" yaml:"api_maturity" validate:"min=1,max=5"`
	DocsQuality      int             `json:"docs_quality" yaml:"docs_quality" validate:"min=1,max=5"`
	Confidence       Confidence      `json:"confidence" yaml:"confidence" validate:"required,enum"`
	Notes            string          `json:"notes" yaml:"notes"`
	Sources          []string        `json:"sources" yaml:"sources" validate:"required"`
}

// SupportsCountry reports whether any supported region matches code,
// ignoring case.
func (i Issuer) SupportsCountry(code string) bool {
	for _, r := range i.RegionsSupported {
		if strings.EqualFold(r.Code, code) {
			return true
		}
	}
	return false
}

func (i Issuer) HasRole(r Role) bool                 { return contains(i.Roles, r) }
func (i Issuer) HasNetwork(n Network) bool           { return contains(i.Networks, n) }
func (i Issuer) HasCardType(c CardType) bool         { return contains(i.CardTypes, c) }
func (i Issuer) HasCustomerType(c CustomerType) bool { return contains(i.CustomerType, c) }
func (i Issuer) HasStablecoin(s Stablecoin) bool     { return contains(i.Stablecoins, s) }
func (i Issuer) HasChain(c Chain) bool               { return contains(i.Chains, c) }
