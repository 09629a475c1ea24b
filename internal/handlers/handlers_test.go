package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperr "acquiring/internal/errors"
	"acquiring/internal/middleware"
	"acquiring/internal/models"
	"acquiring/internal/repositories"
	"acquiring/internal/services/feestructure"
	"acquiring/internal/services/quote"
	"acquiring/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, app *fiber.App, method, path, body string, headers ...string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestFeeStructureHandler(t *testing.T) {
	svc := new(MockFeeStructureService)
	h := NewFeeStructureHandler(svc)

	app := fiber.New()
	app.Post("/fee-structures/validate", h.ValidateFeeStructure)
	app.Post("/fee-structures", h.CreateFeeStructure)
	app.Get("/fee-structures", h.ListFeeStructures)
	app.Get("/fee-structures/:id", h.GetFeeStructure)
	app.Post("/fee-structures/:id/deactivate", h.DeactivateFeeStructure)

	t.Run("validate returns the validator result", func(t *testing.T) {
		svc.On("Validate", mock.MatchedBy(func(in feestructure.Input) bool { return in.Name == "" })).
			Return(validation.Result{Valid: false, Errors: []string{"name is required"}}).Once()

		status, body := doRequest(t, app, http.MethodPost, "/fee-structures/validate", `{"rules":[]}`)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, false, body["valid"])
		assert.Equal(t, []interface{}{"name is required"}, body["errors"])
		assert.Equal(t, []interface{}{}, body["warnings"])
	})

	t.Run("create maps validation errors to 400", func(t *testing.T) {
		svc.On("Create", mock.Anything, mock.Anything).
			Return(nil, apperr.NewValidationError([]string{"Rule 1: fee_value is required"})).Once()

		status, body := doRequest(t, app, http.MethodPost, "/fee-structures",
			`{"name":"Standard","rules":[{"rule_type":"fixed","parameter_name":"per_transaction"}]}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, []interface{}{"Rule 1: fee_value is required"}, body["errors"])
	})

	t.Run("create decodes tier alias", func(t *testing.T) {
		svc.On("Create", mock.Anything, mock.MatchedBy(func(in feestructure.Input) bool {
			return len(in.VolumeTiers) == 1 && in.VolumeTiers[0].FeeValue != nil &&
				in.VolumeTiers[0].FeeValue.Equal(decimal.RequireFromString("3.0"))
		})).Return(&models.FeeStructure{ID: "fs-1", Name: "Volume"}, nil).Once()

		status, body := doRequest(t, app, http.MethodPost, "/fee-structures",
			`{"name":"Volume","volume_tiers":[{"min_volume":0,"fee_percentage":3.0}]}`)
		assert.Equal(t, fiber.StatusCreated, status)
		assert.Equal(t, "fs-1", body["data"].(map[string]interface{})["id"])
	})

	t.Run("malformed body", func(t *testing.T) {
		status, _ := doRequest(t, app, http.MethodPost, "/fee-structures", `{"name":`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("get not found", func(t *testing.T) {
		svc.On("Get", mock.Anything, "missing").Return(nil, apperr.ErrNotFound).Once()

		status, body := doRequest(t, app, http.MethodGet, "/fee-structures/missing", "")
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "NOT_FOUND", body["code"])
	})

	t.Run("list with active filter", func(t *testing.T) {
		active := true
		svc.On("List", mock.Anything, repositories.FeeStructureFilter{Active: &active}, 5, 5).
			Return(feestructure.Page{Items: []models.FeeStructure{{ID: "fs-1"}}, Total: 6}, nil).Once()

		status, body := doRequest(t, app, http.MethodGet, "/fee-structures?active=true&page=2&limit=5", "")
		assert.Equal(t, fiber.StatusOK, status)
		meta := body["meta"].(map[string]interface{})
		assert.Equal(t, float64(2), meta["total_pages"])
	})

	t.Run("list with bad filter", func(t *testing.T) {
		status, _ := doRequest(t, app, http.MethodGet, "/fee-structures?active=maybe", "")
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("deactivate", func(t *testing.T) {
		svc.On("Deactivate", mock.Anything, "fs-1").Return(&models.FeeStructure{ID: "fs-1"}, nil).Once()

		status, body := doRequest(t, app, http.MethodPost, "/fee-structures/fs-1/deactivate", "")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "Fee structure deactivated", body["message"])
	})

	svc.AssertExpectations(t)
}

func TestAssignmentHandler(t *testing.T) {
	svc := new(MockAssignmentService)
	h := NewAssignmentHandler(svc)

	app := fiber.New()
	app.Use(middleware.Operator)
	app.Post("/merchants/:merchantId/fee-structure", h.AssignFeeStructure)
	app.Get("/merchants/:merchantId/fee-structure", h.GetEffectiveFeeStructure)
	app.Get("/merchants/:merchantId/fee-structure/history", h.GetAssignmentHistory)

	t.Run("assign uses operator header", func(t *testing.T) {
		svc.On("Assign", mock.Anything, "fs-1", "m-1", "ops-1").
			Return(&models.MerchantFeeAssignment{ID: "a-1", MerchantID: "m-1"}, nil).Once()

		status, _ := doRequest(t, app, http.MethodPost, "/merchants/m-1/fee-structure",
			`{"fee_structure_id":"fs-1"}`, middleware.OperatorHeader, "ops-1")
		assert.Equal(t, fiber.StatusCreated, status)
	})

	t.Run("inactive structure is a conflict", func(t *testing.T) {
		svc.On("Assign", mock.Anything, "fs-2", "m-1", "").
			Return(nil, apperr.ErrStructureInactive).Once()

		status, body := doRequest(t, app, http.MethodPost, "/merchants/m-1/fee-structure", `{"fee_structure_id":"fs-2"}`)
		assert.Equal(t, fiber.StatusConflict, status)
		assert.Equal(t, "FEE_STRUCTURE_INACTIVE", body["code"])
	})

	t.Run("missing structure id", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPost, "/merchants/m-1/fee-structure", `{}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, []interface{}{"fee_structure_id is required"}, body["errors"])
	})

	t.Run("no assignment", func(t *testing.T) {
		svc.On("EffectiveStructure", mock.Anything, "m-2").Return(nil, apperr.ErrNoAssignment).Once()

		status, _ := doRequest(t, app, http.MethodGet, "/merchants/m-2/fee-structure", "")
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("history", func(t *testing.T) {
		svc.On("History", mock.Anything, "m-1").
			Return([]models.MerchantFeeAssignment{{ID: "a-1"}, {ID: "a-2"}}, nil).Once()

		status, body := doRequest(t, app, http.MethodGet, "/merchants/m-1/fee-structure/history", "")
		assert.Equal(t, fiber.StatusOK, status)
		assert.Len(t, body["data"], 2)
	})

	svc.AssertExpectations(t)
}

func TestPricingHandler(t *testing.T) {
	svc := new(MockPricingService)
	h := NewPricingHandler(svc)

	app := fiber.New()
	app.Put("/merchants/:merchantId/pricing-plan", h.PutPricingPlan)
	app.Get("/merchants/:merchantId/pricing-plan", h.GetPricingPlan)

	t.Run("path merchant wins", func(t *testing.T) {
		svc.On("Upsert", mock.Anything, mock.MatchedBy(func(in validation.PricingPlanInput) bool {
			return in.MerchantID == "m-1" && in.MDR != nil && in.MDR.Equal(decimal.RequireFromString("1.5"))
		})).Return(&models.PricingPlan{MerchantID: "m-1"}, nil).Once()

		status, _ := doRequest(t, app, http.MethodPut, "/merchants/m-1/pricing-plan",
			`{"merchant_id":"other","mdr":"1.5","fixed_fee":"0.10","currencies":["USD"]}`)
		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("no plan", func(t *testing.T) {
		svc.On("Get", mock.Anything, "m-9").Return(nil, apperr.ErrNoPricingPlan).Once()

		status, body := doRequest(t, app, http.MethodGet, "/merchants/m-9/pricing-plan", "")
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "NO_PRICING_PLAN", body["code"])
	})

	svc.AssertExpectations(t)
}

func TestQuoteHandler(t *testing.T) {
	svc := new(MockQuoteService)
	h := NewQuoteHandler(svc)
	now := time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	app := fiber.New()
	app.Post("/merchants/:merchantId/fee-quotes", h.CreateQuote)
	app.Get("/merchants/:merchantId/fee-quotes", h.ListQuotes)

	t.Run("as_of defaults to now", func(t *testing.T) {
		svc.On("Quote", mock.Anything, mock.MatchedBy(func(req quote.Request) bool {
			return req.MerchantID == "m-1" &&
				req.AsOf.Equal(now) &&
				req.Amount.Equal(decimal.RequireFromString("100")) &&
				req.CumulativeVolume.IsZero()
		})).Return(&models.FeeQuote{
			ID:     "q-1",
			Result: models.FeeResult{FeeAmount: decimal.RequireFromString("2.80"), Currency: "USD"},
		}, nil).Once()

		status, _ := doRequest(t, app, http.MethodPost, "/merchants/m-1/fee-quotes", `{"amount":"100.00","currency":"USD"}`)
		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("explicit as_of and volume", func(t *testing.T) {
		asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		svc.On("Quote", mock.Anything, mock.MatchedBy(func(req quote.Request) bool {
			return req.AsOf.Equal(asOf) && req.CumulativeVolume.Equal(decimal.NewFromInt(1500))
		})).Return(&models.FeeQuote{ID: "q-2"}, nil).Once()

		status, _ := doRequest(t, app, http.MethodPost, "/merchants/m-1/fee-quotes",
			`{"amount":200,"cumulative_volume":1500,"as_of":"2025-06-01T00:00:00Z"}`)
		assert.Equal(t, fiber.StatusOK, status)
	})

	t.Run("tier not found is unprocessable", func(t *testing.T) {
		svc.On("Quote", mock.Anything, mock.MatchedBy(func(req quote.Request) bool {
			return req.CumulativeVolume.Equal(decimal.NewFromInt(150))
		})).Return(nil, &apperr.ComputationError{RuleIndex: 1, Err: apperr.ErrTierNotFound}).Once()

		status, body := doRequest(t, app, http.MethodPost, "/merchants/m-1/fee-quotes",
			`{"amount":10,"cumulative_volume":150}`)
		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		assert.Equal(t, "TIER_NOT_FOUND", body["code"])
	})

	t.Run("missing amount", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPost, "/merchants/m-1/fee-quotes", `{"currency":"USD"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, []interface{}{"amount is required"}, body["errors"])
	})

	t.Run("unexpected error hides details", func(t *testing.T) {
		svc.On("List", mock.Anything, "m-1", 10, 0).Return(nil, int64(0), errors.New("mongo exploded")).Once()

		status, body := doRequest(t, app, http.MethodGet, "/merchants/m-1/fee-quotes", "")
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "internal server error", body["error"])
	})

	svc.AssertExpectations(t)
}

func TestHealthHandler(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("down") }

	app := fiber.New()
	app.Get("/ok", NewHealthHandler(map[string]Checker{"database": ok, "redis": ok}).HealthCheck)
	app.Get("/degraded", NewHealthHandler(map[string]Checker{"database": ok, "mongo": down}).HealthCheck)

	status, body := doRequest(t, app, http.MethodGet, "/ok", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, body = doRequest(t, app, http.MethodGet, "/degraded", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "unavailable", body["services"].(map[string]interface{})["mongo"])
	assert.NotContains(t, body, "stats")
}

func TestHealthHandler_Stats(t *testing.T) {
	ok := func(context.Context) error { return nil }
	pool := func() map[string]interface{} {
		return map[string]interface{}{"hits": uint32(7), "total_conns": uint32(2)}
	}

	app := fiber.New()
	app.Get("/health", NewHealthHandler(map[string]Checker{"redis": ok}).WithStats("redis_pool", pool).HealthCheck)

	status, body := doRequest(t, app, http.MethodGet, "/health", "")
	require.Equal(t, fiber.StatusOK, status)
	stats := body["stats"].(map[string]interface{})["redis_pool"].(map[string]interface{})
	assert.EqualValues(t, 7, stats["hits"])
	assert.EqualValues(t, 2, stats["total_conns"])
}
