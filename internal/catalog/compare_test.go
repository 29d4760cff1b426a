package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stablecard/internal/model"
)

func TestCompareExcludesUnsupportedCountry(t *testing.T) {
	issuers := []model.Issuer{
		newIssuer("us-only"),
		newIssuer("gb-only", regions("GB"), func(i *model.Issuer) {
			i.Networks = []model.Network{model.NetworkVisa, model.NetworkMastercard}
		}),
	}

	results := Compare(issuers, model.CompareQuery{Country: "US", Network: model.NetworkMastercard})

	assert.Equal(t, []string{"us-only"}, resultIDs(results))
}

func TestCompareBaseScore(t *testing.T) {
	issuers := []model.Issuer{newIssuer("a", quality(4, 2))}

	results := Compare(issuers, model.CompareQuery{Country: "US"})

	require.Len(t, results, 1)
	assert.Equal(t, 20+2*4+2*2, results[0].Score)
	assert.Empty(t, results[0].Missing)
	require.Len(t, results[0].Reasons, 3)
	assert.Equal(t, "country", results[0].Reasons[0].Type)
	assert.Equal(t, "api_maturity", results[0].Reasons[1].Type)
	assert.Equal(t, 8, results[0].Reasons[1].Score)
	assert.Equal(t, "docs_quality", results[0].Reasons[2].Type)
	assert.Equal(t, 4, results[0].Reasons[2].Score)
}

func TestCompareCountryIsCaseInsensitive(t *testing.T) {
	issuer := newIssuer("x", quality(4, 3), func(i *model.Issuer) {
		i.Networks = []model.Network{model.NetworkVisa}
		i.CustodyModel = model.CustodyCustodial
	})

	results := Compare([]model.Issuer{issuer}, model.CompareQuery{Country: "us", Network: model.NetworkVisa})

	require.Len(t, results, 1)
	assert.Equal(t, 44, results[0].Score)
}

func TestCompareSoftCriteria(t *testing.T) {
	tests := []struct {
		name    string
		issuer  model.Issuer
		query   model.CompareQuery
		matched bool
		reason  string
	}{
		{
			name:    "network match",
			issuer:  newIssuer("a"),
			query:   model.CompareQuery{Network: model.NetworkVisa},
			matched: true,
			reason:  "network",
		},
		{
			name:   "network mismatch",
			issuer: newIssuer("a"),
			query:  model.CompareQuery{Network: model.NetworkMastercard},
		},
		{
			name:    "stablecoin match",
			issuer:  newIssuer("a"),
			query:   model.CompareQuery{Stablecoin: model.StablecoinUSDC},
			matched: true,
			reason:  "stablecoin",
		},
		{
			name:   "stablecoin mismatch",
			issuer: newIssuer("a"),
			query:  model.CompareQuery{Stablecoin: model.StablecoinDAI},
		},
		{
			name:    "chain match",
			issuer:  newIssuer("a"),
			query:   model.CompareQuery{Chain: model.ChainEthereum},
			matched: true,
			reason:  "chain",
		},
		{
			name: "agnostic issuer matches any chain",
			issuer: newIssuer("a", func(i *model.Issuer) {
				i.Chains = []model.Chain{model.ChainAgnostic}
			}),
			query:   model.CompareQuery{Chain: model.ChainCronos},
			matched: true,
			reason:  "chain",
		},
		{
			name:   "chain mismatch",
			issuer: newIssuer("a"),
			query:  model.CompareQuery{Chain: model.ChainSolana},
		},
		{
			name:    "custody match",
			issuer:  newIssuer("a"),
			query:   model.CompareQuery{CustodyModel: model.CustodyCustodial},
			matched: true,
			reason:  "custody",
		},
		{
			name:   "custody mismatch",
			issuer: newIssuer("a"),
			query:  model.CompareQuery{CustodyModel: model.CustodyNonCustodial},
		},
		{
			name:    "card type match",
			issuer:  newIssuer("a"),
			query:   model.CompareQuery{CardType: model.CardTypeDebit},
			matched: true,
			reason:  "card_type",
		},
		{
			name:   "card type mismatch",
			issuer: newIssuer("a"),
			query:  model.CompareQuery{CardType: model.CardTypeCredit},
		},
		{
			name:    "customer type match",
			issuer:  newIssuer("a"),
			query:   model.CompareQuery{CustomerType: model.CustomerTypeB2C},
			matched: true,
			reason:  "customer_type",
		},
		{
			name: "issuer serving both matches b2b",
			issuer: newIssuer("a", func(i *model.Issuer) {
				i.CustomerType = []model.CustomerType{model.CustomerTypeBoth}
			}),
			query:   model.CompareQuery{CustomerType: model.CustomerTypeB2B},
			matched: true,
			reason:  "customer_type",
		},
		{
			name:   "customer type mismatch",
			issuer: newIssuer("a"),
			query:  model.CompareQuery{CustomerType: model.CustomerTypeB2B},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Country = "US"
			base := 20 + 2*tt.issuer.APIMaturity + 2*tt.issuer.DocsQuality

			results := Compare([]model.Issuer{tt.issuer}, tt.query)
			require.Len(t, results, 1)
			r := results[0]

			if tt.matched {
				assert.Equal(t, base+10, r.Score)
				assert.Empty(t, r.Missing)
				assert.Equal(t, tt.reason, r.Reasons[1].Type)
				assert.Equal(t, 10, r.Reasons[1].Score)
			} else {
				assert.Equal(t, base, r.Score)
				assert.Len(t, r.Missing, 1)
				assert.Len(t, r.Reasons, 3)
			}
		})
	}
}

func TestCompareKYCIsAsymmetric(t *testing.T) {
	kyc := func(level model.KYCKYB) model.Issuer {
		return newIssuer(string(level), func(i *model.Issuer) { i.KYCKYB = level })
	}

	tests := []struct {
		want    model.KYCKYB
		have    model.KYCKYB
		matched bool
	}{
		{model.KYCRequired, model.KYCRequired, true},
		{model.KYCRequired, model.KYCOptional, false},
		{model.KYCRequired, model.KYCNotSupported, false},
		{model.KYCOptional, model.KYCRequired, true},
		{model.KYCOptional, model.KYCOptional, true},
		{model.KYCOptional, model.KYCNotSupported, false},
		{model.KYCNotSupported, model.KYCNotSupported, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.want)+"/"+string(tt.have), func(t *testing.T) {
			results := Compare([]model.Issuer{kyc(tt.have)}, model.CompareQuery{Country: "US", KYC: tt.want})
			require.Len(t, results, 1)

			if tt.matched {
				assert.Equal(t, 42, results[0].Score)
				assert.Empty(t, results[0].Missing)
			} else {
				assert.Equal(t, 32, results[0].Score)
				assert.Equal(t, []string{"KYC requirement mismatch: " + string(tt.have) + " vs " + string(tt.want)}, results[0].Missing)
			}
		})
	}
}

func TestCompareMismatchesNeverSubtract(t *testing.T) {
	issuer := newIssuer("a")
	query := model.CompareQuery{Country: "US"}
	previous := Compare([]model.Issuer{issuer}, query)[0].Score

	steps := []func(*model.CompareQuery){
		func(q *model.CompareQuery) { q.Network = model.NetworkMastercard },
		func(q *model.CompareQuery) { q.Stablecoin = model.StablecoinUSDC },
		func(q *model.CompareQuery) { q.Chain = model.ChainSolana },
		func(q *model.CompareQuery) { q.CardType = model.CardTypeDebit },
		func(q *model.CompareQuery) { q.KYC = model.KYCOptional },
	}
	for _, step := range steps {
		step(&query)
		current := Compare([]model.Issuer{issuer}, query)[0].Score
		assert.GreaterOrEqual(t, current, previous)
		previous = current
	}

	final := Compare([]model.Issuer{issuer}, query)[0]
	assert.Equal(t, []string{
		"Does not support network: mastercard",
		"Does not support chain: Solana",
	}, final.Missing)
}

func TestCompareSortsDescendingAndKeepsCatalogOrderOnTies(t *testing.T) {
	issuers := []model.Issuer{
		newIssuer("low", quality(1, 1)),
		newIssuer("tie-first", quality(3, 3)),
		newIssuer("high", quality(5, 5)),
		newIssuer("tie-second", quality(3, 3)),
	}

	results := Compare(issuers, model.CompareQuery{Country: "US"})

	assert.Equal(t, []string{"high", "tie-first", "tie-second", "low"}, resultIDs(results))
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestCompareEmptyCountryMatchesNothing(t *testing.T) {
	results := Compare([]model.Issuer{newIssuer("a")}, model.CompareQuery{Network: model.NetworkVisa})

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestUnscored(t *testing.T) {
	issuers := []model.Issuer{
		newIssuer("b", regions("GB")),
		newIssuer("a", quality(5, 5)),
	}

	results := Unscored(issuers)

	assert.Equal(t, []string{"b", "a"}, resultIDs(results))
	for _, r := range results {
		assert.Equal(t, 50, r.Score)
		assert.NotNil(t, r.Reasons)
		assert.Empty(t, r.Reasons)
		assert.NotNil(t, r.Missing)
		assert.Empty(t, r.Missing)
	}
}
