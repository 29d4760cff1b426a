// Package catalog holds the issuer dataset and the pure functions that
// filter, rank and describe it.
//
// A Catalog is built once from a Source and never changes afterwards, so a
// single value can be shared by every request without locking.
package catalog

import (
	"context"
	"fmt"

	"stablecard/internal/domainerrors"
	"stablecard/internal/model"
)

// Source is anything that can produce the raw issuer records: a JSON or YAML
// file, or the issuers table in Postgres.
type Source interface {
	GetIssuers(ctx context.Context) ([]model.Issuer, error)
}

type Catalog struct {
	issuers []model.Issuer
	byID    map[string]int
}

// New builds a catalog over a copy of issuers. Callers are expected to have
// validated the records; New does not.
func New(issuers []model.Issuer) *Catalog {
	c := &Catalog{
		issuers: make([]model.Issuer, len(issuers)),
		byID:    make(map[string]int, len(issuers)),
	}
	copy(c.issuers, issuers)
	for i, issuer := range c.issuers {
		if _, seen := c.byID[issuer.ID]; !seen {
			c.byID[issuer.ID] = i
		}
	}
	return c
}

// Load reads issuers from src, validates them and builds a catalog.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	issuers, err := src.GetIssuers(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading issuers: %w", err)
	}

	if err := Validate(issuers); err != nil {
		return nil, fmt.Errorf("validating issuers: %w", err)
	}

	return New(issuers), nil
}

func (c *Catalog) Len() int {
	return len(c.issuers)
}

// All returns every issuer in catalog order.
func (c *Catalog) All() []model.Issuer {
	out := make([]model.Issuer, len(c.issuers))
	copy(out, c.issuers)
	return out
}

func (c *Catalog) Get(id string) (model.Issuer, error) {
	idx, ok := c.byID[id]
	if !ok {
		return model.Issuer{}, domainerrors.New(domainerrors.CodeNotFound, "Issuer not found")
	}
	return c.issuers[idx], nil
}

func (c *Catalog) Filter(criteria Criteria) []model.Issuer {
	return Filter(c.issuers, criteria)
}

func (c *Catalog) Compare(query model.CompareQuery) []model.ComparisonResult {
	return Compare(c.issuers, query)
}

func (c *Catalog) Unscored() []model.ComparisonResult {
	return Unscored(c.issuers)
}

func (c *Catalog) Metadata() model.MetadataResponse {
	return Metadata(c.issuers)
}
