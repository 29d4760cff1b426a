package catalog

import (
	"fmt"
	"sort"

	"stablecard/internal/model"
)

// Point values used by Compare.
const (
	CountryPoints   = 20
	CriterionPoints = 10
	QualityWeight   = 2

	// UnscoredPoints is the flat score given to every issuer when no
	// country is requested.
	UnscoredPoints = 50
)

// Compare ranks the issuers that support query.Country, highest score first.
// Issuers outside the requested country are left out entirely. Ties keep
// catalog order. An empty country matches nothing; callers wanting the
// unfiltered listing use Unscored.
func Compare(issuers []model.Issuer, query model.CompareQuery) []model.ComparisonResult {
	results := make([]model.ComparisonResult, 0, len(issuers))
	for _, issuer := range issuers {
		if !issuer.SupportsCountry(query.Country) {
			continue
		}
		results = append(results, score(issuer, query))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Unscored lists every issuer in catalog order with UnscoredPoints and no
// explanation.
func Unscored(issuers []model.Issuer) []model.ComparisonResult {
	results := make([]model.ComparisonResult, 0, len(issuers))
	for _, issuer := range issuers {
		results = append(results, model.ComparisonResult{
			Issuer:  issuer,
			Score:   UnscoredPoints,
			Reasons: []model.MatchReason{},
			Missing: []string{},
		})
	}
	return results
}

type scorecard struct {
	model.ComparisonResult
}

func (s *scorecard) credit(kind string, points int, message string) {
	s.Score += points
	s.Reasons = append(s.Reasons, model.MatchReason{Type: kind, Message: message, Score: points})
}

// criterion records a soft match worth CriterionPoints, or a missing entry.
// Mismatches never subtract.
func (s *scorecard) criterion(matched bool, kind, hit, miss string) {
	if matched {
		s.credit(kind, CriterionPoints, hit)
		return
	}
	s.Missing = append(s.Missing, miss)
}

func score(issuer model.Issuer, q model.CompareQuery) model.ComparisonResult {
	s := scorecard{model.ComparisonResult{
		Issuer:  issuer,
		Reasons: []model.MatchReason{},
		Missing: []string{},
	}}

	s.credit("country", CountryPoints, fmt.Sprintf("Supports country: %s", q.Country))

	if q.Network != "" {
		s.criterion(issuer.HasNetwork(q.Network), "network",
			fmt.Sprintf("Supports %s network", q.Network),
			fmt.Sprintf("Does not support network: %s", q.Network))
	}

	if q.Stablecoin != "" {
		s.criterion(issuer.HasStablecoin(q.Stablecoin), "stablecoin",
			fmt.Sprintf("Supports %s", q.Stablecoin),
			fmt.Sprintf("Does not support stablecoin: %s", q.Stablecoin))
	}

	if q.Chain != "" {
		s.criterion(issuer.HasChain(q.Chain) || issuer.HasChain(model.ChainAgnostic), "chain",
			fmt.Sprintf("Supports %s or is chain-agnostic", q.Chain),
			fmt.Sprintf("Does not support chain: %s", q.Chain))
	}

	if q.CustodyModel != "" {
		s.criterion(issuer.CustodyModel == q.CustodyModel, "custody",
			fmt.Sprintf("Matches custody model: %s", q.CustodyModel),
			fmt.Sprintf("Custody model mismatch: %s vs %s", issuer.CustodyModel, q.CustodyModel))
	}

	if q.CardType != "" {
		s.criterion(issuer.HasCardType(q.CardType), "card_type",
			fmt.Sprintf("Supports %s cards", q.CardType),
			fmt.Sprintf("Does not support card type: %s", q.CardType))
	}

	if q.CustomerType != "" {
		s.criterion(issuer.HasCustomerType(q.CustomerType) || issuer.HasCustomerType(model.CustomerTypeBoth), "customer_type",
			fmt.Sprintf("Supports %s customers", q.CustomerType),
			fmt.Sprintf("Does not support customer type: %s", q.CustomerType))
	}

	if q.KYC != "" {
		s.criterion(kycSatisfied(q.KYC, issuer.KYCKYB), "kyc",
			fmt.Sprintf("KYC requirement matches: %s", q.KYC),
			fmt.Sprintf("KYC requirement mismatch: %s vs %s", issuer.KYCKYB, q.KYC))
	}

	s.credit("api_maturity", QualityWeight*issuer.APIMaturity, fmt.Sprintf("API maturity: %d/5", issuer.APIMaturity))
	s.credit("docs_quality", QualityWeight*issuer.DocsQuality, fmt.Sprintf("Documentation quality: %d/5", issuer.DocsQuality))

	return s.ComparisonResult
}

// kycSatisfied applies the asymmetric KYC rule: wanting "required" needs an
// issuer that requires it, wanting "optional" accepts anything short of
// not_supported. Any other wanted value never matches.
func kycSatisfied(want, have model.KYCKYB) bool {
	switch want {
	case model.KYCRequired:
		return have == model.KYCRequired
	case model.KYCOptional:
		return have != model.KYCNotSupported
	default:
		return false
	}
}
