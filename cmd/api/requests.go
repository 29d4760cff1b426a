package main

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"

	"stablecard/internal/catalog"
	"stablecard/internal/domainerrors"
	"stablecard/internal/model"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	IssuersCount int    `json:"issuers_count"`
}

// criteriaFromQuery reads the list filters. Each parameter may repeat and
// empty values are ignored.
func criteriaFromQuery(q url.Values) catalog.Criteria {
	return catalog.Criteria{
		Roles:         values[model.Role](q, "role"),
		Networks:      values[model.Network](q, "network"),
		CustomerTypes: values[model.CustomerType](q, "customer_type"),
		Countries:     values[string](q, "country"),
	}
}

// compareQueryFromQuery reads the comparison preferences. Values are not
// checked against their domains; an unknown value simply never matches.
func compareQueryFromQuery(q url.Values) model.CompareQuery {
	return model.CompareQuery{
		Country:      first(q, "country"),
		Network:      model.Network(first(q, "network")),
		CustomerType: model.CustomerType(first(q, "customer_type")),
		CustodyModel: model.CustodyModel(first(q, "custody_model")),
		Stablecoin:   model.Stablecoin(first(q, "stablecoin")),
		Chain:        model.Chain(first(q, "chain")),
		KYC:          model.KYCKYB(first(q, "kyc")),
		CardType:     model.CardType(first(q, "card_type")),
	}
}

func values[T ~string](q url.Values, key string) []T {
	var out []T
	for _, v := range q[key] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, T(v))
		}
	}
	return out
}

func first(q url.Values, key string) string {
	return strings.TrimSpace(q.Get(key))
}

func writeJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Errorf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := domainerrors.CodeOf(err)
	msg := err.Error()
	if code == domainerrors.CodeInternal {
		msg = "internal server error"
	}
	writeJSON(w, statusFor(code), ErrorResponse{Error: msg, Code: string(code)})
}

func statusFor(code domainerrors.Code) int {
	switch code {
	case domainerrors.CodeNotFound:
		return http.StatusNotFound
	case domainerrors.CodeBadRequest, domainerrors.CodeValidation:
		return http.StatusBadRequest
	case domainerrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
