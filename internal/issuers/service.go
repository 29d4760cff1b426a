// Package issuers is the context-aware façade the HTTP layer talks to. It
// adds tracing, metrics and logging around the pure catalog functions.
package issuers

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks Service

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"stablecard/internal/catalog"
	"stablecard/internal/metrics"
	"stablecard/internal/model"
)

const (
	ModeScored   = "scored"
	ModeUnscored = "unscored"
)

type Service interface {
	List(ctx context.Context, criteria catalog.Criteria) []model.Issuer
	Get(ctx context.Context, id string) (model.Issuer, error)
	Compare(ctx context.Context, query model.CompareQuery) model.CompareResponse
	Metadata(ctx context.Context) model.MetadataResponse
	Count() int
}

type service struct {
	catalog *catalog.Catalog
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

func NewService(c *catalog.Catalog, m *metrics.Metrics) Service {
	m.SetCatalogSize(c.Len())

	return &service{
		catalog: c,
		metrics: m,
		tracer:  otel.Tracer("stablecard/issuers"),
	}
}

func (s *service) List(ctx context.Context, criteria catalog.Criteria) []model.Issuer {
	_, span := s.tracer.Start(ctx, "issuers.List")
	defer span.End()

	out := s.catalog.Filter(criteria)
	span.SetAttributes(
		attribute.Bool("filtered", !criteria.IsEmpty()),
		attribute.Int("results", len(out)),
	)
	return out
}

func (s *service) Get(ctx context.Context, id string) (model.Issuer, error) {
	_, span := s.tracer.Start(ctx, "issuers.Get", trace.WithAttributes(attribute.String("issuer_id", id)))
	defer span.End()

	issuer, err := s.catalog.Get(id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.WithField("issuer_id", id).Debug("issuer lookup missed")
		return model.Issuer{}, err
	}
	return issuer, nil
}

// Compare ranks the catalog against query. Without a country every issuer
// is returned with the flat unscored result instead.
func (s *service) Compare(ctx context.Context, query model.CompareQuery) model.CompareResponse {
	_, span := s.tracer.Start(ctx, "issuers.Compare", trace.WithAttributes(attribute.String("country", query.Country)))
	defer span.End()

	mode := ModeScored
	var matches []model.ComparisonResult
	if query.Country == "" {
		mode = ModeUnscored
		matches = s.catalog.Unscored()
	} else {
		matches = s.catalog.Compare(query)
	}

	s.metrics.IncrementComparisons(mode)
	span.SetAttributes(
		attribute.String("mode", mode),
		attribute.Int("results", len(matches)),
	)

	return model.CompareResponse{Matches: matches, Query: query}
}

func (s *service) Metadata(ctx context.Context) model.MetadataResponse {
	_, span := s.tracer.Start(ctx, "issuers.Metadata")
	defer span.End()

	return s.catalog.Metadata()
}

func (s *service) Count() int {
	return s.catalog.Len()
}
