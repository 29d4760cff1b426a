package catalog

import "stablecard/internal/model"

// newIssuer returns a valid issuer supporting US only, with the given
// modifications applied.
func newIssuer(id string, mods ...func(*model.Issuer)) model.Issuer {
	i := model.Issuer{
		ID:               id,
		Name:             "Issuer " + id,
		Website:          "https://" + id + ".example.com",
		Roles:            []model.Role{model.RoleProgramManager},
		Networks:         []model.Network{model.NetworkVisa},
		CardTypes:        []model.CardType{model.CardTypeDebit},
		RegionsSupported: []model.Region{{Code: "US"}},
		CustomerType:     []model.CustomerType{model.CustomerTypeB2C},
		CustodyModel:     model.CustodyCustodial,
		FundingSources:   []model.FundingSource{model.FundingStablecoin},
		Stablecoins:      []model.Stablecoin{model.StablecoinUSDC},
		Chains:           []model.Chain{model.ChainEthereum},
		KYCKYB:           model.KYCRequired,
		PricingModel:     []string{"per_card"},
		APIMaturity:      3,
		DocsQuality:      3,
		Confidence:       model.ConfidenceMedium,
		Notes:            "",
		Sources:          []string{"https://" + id + ".example.com/docs"},
	}
	for _, mod := range mods {
		mod(&i)
	}
	return i
}

func regions(codes ...string) func(*model.Issuer) {
	return func(i *model.Issuer) {
		i.RegionsSupported = nil
		for _, c := range codes {
			i.RegionsSupported = append(i.RegionsSupported, model.Region{Code: c})
		}
	}
}

func quality(api, docs int) func(*model.Issuer) {
	return func(i *model.Issuer) {
		i.APIMaturity = api
		i.DocsQuality = docs
	}
}

func ids(issuers []model.Issuer) []string {
	out := make([]string, 0, len(issuers))
	for _, i := range issuers {
		out = append(out, i.ID)
	}
	return out
}

func resultIDs(results []model.ComparisonResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Issuer.ID)
	}
	return out
}
