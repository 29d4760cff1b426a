package model

// Enum domains for every enum-valued issuer field. Validation and the
// metadata endpoint both read these slices; order is the order clients see.

type Role string

const (
	RoleOrchestration  Role = "orchestration"
	RoleProgramManager Role = "program_manager"
	RoleProcessor      Role = "processor"
	RoleBINSponsor     Role = "bin_sponsor"
)

var Roles = []Role{RoleOrchestration, RoleProgramManager, RoleProcessor, RoleBINSponsor}

type Network string

const (
	NetworkVisa       Network = "visa"
	NetworkMastercard Network = "mastercard"
)

var Networks = []Network{NetworkVisa, NetworkMastercard}

type CardType string

const (
	CardTypeDebit   CardType = "debit"
	CardTypePrepaid CardType = "prepaid"
	CardTypeCredit  CardType = "credit"
)

var CardTypes = []CardType{CardTypeDebit, CardTypePrepaid, CardTypeCredit}

type CustomerType string

const (
	CustomerTypeB2B  CustomerType = "b2b"
	CustomerTypeB2C  CustomerType = "b2c"
	CustomerTypeBoth CustomerType = "both"
)

var CustomerTypes = []CustomerType{CustomerTypeB2B, CustomerTypeB2C, CustomerTypeBoth}

type CustodyModel string

const (
	CustodyCustodial    CustodyModel = "custodial"
	CustodyNonCustodial CustodyModel = "non_custodial"
	CustodyHybrid       CustodyModel = "hybrid"
)

var CustodyModels = []CustodyModel{CustodyCustodial, CustodyNonCustodial, CustodyHybrid}

type FundingSource string

const (
	FundingStablecoin FundingSource = "stablecoin"
	FundingFiatACH    FundingSource = "fiat_ach"
	FundingWire       FundingSource = "wire"
	FundingCrypto     FundingSource = "crypto"
)

var FundingSources = []FundingSource{FundingStablecoin, FundingFiatACH, FundingWire, FundingCrypto}

type Stablecoin string

const (
	StablecoinUSDC Stablecoin = "USDC"
	StablecoinUSDT Stablecoin = "USDT"
	StablecoinDAI  Stablecoin = "DAI"
	StablecoinUSDP Stablecoin = "USDP"
)

var Stablecoins = []Stablecoin{StablecoinUSDC, StablecoinUSDT, StablecoinDAI, StablecoinUSDP}

type Chain string

const (
	ChainEthereum Chain = "Ethereum"
	ChainBase     Chain = "Base"
	ChainSolana   Chain = "Solana"
	ChainPolygon  Chain = "Polygon"
	ChainCronos   Chain = "Cronos"
	// ChainAgnostic marks an issuer that accepts funding from any chain.
	ChainAgnostic Chain = "agnostic"
)

var Chains = []Chain{ChainEthereum, ChainBase, ChainSolana, ChainPolygon, ChainCronos, ChainAgnostic}

type KYCKYB string

const (
	KYCRequired     KYCKYB = "required"
	KYCOptional     KYCKYB = "optional"
	KYCNotSupported KYCKYB = "not_supported"
)

var KYCOptions = []KYCKYB{KYCRequired, KYCOptional, KYCNotSupported}

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

var ConfidenceLevels = []Confidence{ConfidenceHigh, ConfidenceMedium, ConfidenceLow}

func (r Role) IsValid() bool          { return contains(Roles, r) }
func (n Network) IsValid() bool       { return contains(Networks, n) }
func (c CardType) IsValid() bool      { return contains(CardTypes, c) }
func (c CustomerType) IsValid() bool  { return contains(CustomerTypes, c) }
func (c CustodyModel) IsValid() bool  { return contains(CustodyModels, c) }
func (f FundingSource) IsValid() bool { return contains(FundingSources, f) }
func (s Stablecoin) IsValid() bool    { return contains(Stablecoins, s) }
func (c Chain) IsValid() bool         { return contains(Chains, c) }
func (k KYCKYB) IsValid() bool        { return contains(KYCOptions, k) }
func (c Confidence) IsValid() bool    { return contains(ConfidenceLevels, c) }

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
