package catalog

import "stablecard/internal/model"

// Criteria narrows the list endpoint. Every non-empty field must be
// satisfied; within a field any one value is enough.
type Criteria struct {
	Roles         []model.Role
	Networks      []model.Network
	CustomerTypes []model.CustomerType
	Countries     []string
}

func (c Criteria) IsEmpty() bool {
	return len(c.Roles) == 0 && len(c.Networks) == 0 && len(c.CustomerTypes) == 0 && len(c.Countries) == 0
}

// Matches reports whether issuer satisfies every supplied criterion.
// Customer types match exactly here; "both" is not expanded.
func (c Criteria) Matches(issuer model.Issuer) bool {
	return anyOf(c.Roles, issuer.HasRole) &&
		anyOf(c.Networks, issuer.HasNetwork) &&
		anyOf(c.CustomerTypes, issuer.HasCustomerType) &&
		anyOf(c.Countries, issuer.SupportsCountry)
}

// Filter returns the issuers matching criteria, in catalog order. The result
// is never nil.
func Filter(issuers []model.Issuer, criteria Criteria) []model.Issuer {
	out := make([]model.Issuer, 0, len(issuers))
	for _, issuer := range issuers {
		if criteria.Matches(issuer) {
			out = append(out, issuer)
		}
	}
	return out
}

func anyOf[T any](wanted []T, has func(T) bool) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if has(w) {
			return true
		}
	}
	return false
}
