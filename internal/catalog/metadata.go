package catalog

import (
	"slices"
	"sort"

	"stablecard/internal/model"
)

// Metadata returns the enum domains for every filterable field plus the
// distinct region codes present in issuers, sorted ascending.
func Metadata(issuers []model.Issuer) model.MetadataResponse {
	return model.MetadataResponse{
		Roles:              slices.Clone(model.Roles),
		Networks:           slices.Clone(model.Networks),
		CardTypes:          slices.Clone(model.CardTypes),
		CustomerTypes:      slices.Clone(model.CustomerTypes),
		CustodyModels:      slices.Clone(model.CustodyModels),
		FundingSources:     slices.Clone(model.FundingSources),
		Stablecoins:        slices.Clone(model.Stablecoins),
		Chains:             slices.Clone(model.Chains),
		KYCKYBOptions:      slices.Clone(model.KYCOptions),
		ConfidenceLevels:   slices.Clone(model.ConfidenceLevels),
		SupportedCountries: countries(issuers),
	}
}

func countries(issuers []model.Issuer) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, issuer := range issuers {
		for _, r := range issuer.RegionsSupported {
			if _, ok := seen[r.Code]; ok {
				continue
			}
			seen[r.Code] = struct{}{}
			out = append(out, r.Code)
		}
	}
	sort.Strings(out)
	return out
}
