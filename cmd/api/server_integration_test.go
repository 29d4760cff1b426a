//go:build integration

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stablecard/internal/catalog"
	"stablecard/internal/database"
	"stablecard/internal/issuers"
	"stablecard/internal/metrics"
	"stablecard/internal/model"
)

var baseURL string

// seedDB replaces the issuers table with the sample catalog.
func seedDB(cfg *Config) {
	db, err := database.NewClient(cfg.DBCon)
	if err != nil {
		log.Fatalf("creating database client: %v", err)
	}
	defer db.Close()

	list, err := catalog.ReadFile(filepath.Join("..", "..", "data", "issuers.json"))
	if err != nil {
		log.Fatalf("reading sample catalog: %v", err)
	}

	if err := db.ReplaceIssuers(context.Background(), list); err != nil {
		log.Fatalf("seeding issuers: %v", err)
	}
}

func TestMain(m *testing.M) {
	// Flags belong to `go test`; configuration comes from the environment.
	cfg, err := parseConfig(nil)
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}
	cfg.CatalogSource = SourcePostgres
	cfg.CatalogRequired = true

	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		log.Fatalf("converting port to integer: %v", err)
	}
	baseURL = fmt.Sprintf("http://localhost:%d", port)

	seedDB(cfg)

	cat, err := loadCatalog(context.Background(), cfg)
	if err != nil {
		log.Fatalf("loading catalog: %v", err)
	}

	registry := prometheus.NewRegistry()
	appMetrics := metrics.New(registry)
	server := NewServer(port, issuers.NewService(cat, appMetrics), WithMetrics(appMetrics, registry))

	go func() {
		if err := server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// Allow some time for the server to start
	time.Sleep(100 * time.Millisecond)

	exitVal := m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	os.Exit(exitVal)
}

func getInto(t *testing.T, path string, out any) int {
	t.Helper()
	resp, err := http.Get(baseURL + path)
	if err != nil {
		t.Fatalf("Could not send GET request: %v", err)
	}
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealthReportsSeededCatalog(t *testing.T) {
	var health HealthResponse
	assert.Equal(t, http.StatusOK, getInto(t, "/health", &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 5, health.IssuersCount)
}

func TestListIssuersFromDatabase(t *testing.T) {
	var list []model.Issuer
	assert.Equal(t, http.StatusOK, getInto(t, "/issuers", &list))
	require.Len(t, list, 5)
	// Catalog order survives the round trip through Postgres.
	assert.Equal(t, "northwind-cards", list[0].ID)
	assert.Equal(t, "open-ledger-card", list[4].ID)

	var filtered []model.Issuer
	assert.Equal(t, http.StatusOK, getInto(t, "/issuers?network=mastercard&country=mx", &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "open-ledger-card", filtered[0].ID)
}

func TestGetIssuerByID(t *testing.T) {
	var issuer model.Issuer
	assert.Equal(t, http.StatusOK, getInto(t, "/issuers/keystone-bin", &issuer))
	assert.Equal(t, "keystone-bin", issuer.ID)

	assert.Equal(t, http.StatusNotFound, getInto(t, "/issuers/unknown", nil))
}

func TestCompareRanksByScore(t *testing.T) {
	var resp model.CompareResponse
	assert.Equal(t, http.StatusOK, getInto(t, "/compare?country=GB&network=visa", &resp))
	require.Len(t, resp.Matches, 3)
	for i := 1; i < len(resp.Matches); i++ {
		assert.GreaterOrEqual(t, resp.Matches[i-1].Score, resp.Matches[i].Score)
	}
	assert.Equal(t, "GB", resp.Query.Country)
}

func TestMetadata(t *testing.T) {
	var meta model.MetadataResponse
	assert.Equal(t, http.StatusOK, getInto(t, "/metadata", &meta))
	assert.Contains(t, meta.SupportedCountries, "US")
	assert.Equal(t, model.Chains, meta.Chains)
}
