// Package quote prices transactions for a merchant. The merchant's effective
// fee structure is used first, then its pricing plan, then the platform
// default plan.
package quote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperr "acquiring/internal/errors"
	"acquiring/internal/models"
	"acquiring/internal/repositories/audit"
	"acquiring/internal/services/fee"
	"acquiring/internal/services/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type StructureResolver interface {
	EffectiveStructure(ctx context.Context, merchantID string) (*models.FeeStructure, error)
}

type PlanReader interface {
	Get(ctx context.Context, merchantID string) (*models.PricingPlan, error)
	Default() models.PricingPlan
}

// Request is one transaction to price. AsOf must be set by the caller.
type Request struct {
	MerchantID       string
	Amount           decimal.Decimal
	Currency         string
	CumulativeVolume decimal.Decimal
	AsOf             time.Time
}

type Service struct {
	structures StructureResolver
	plans      PlanReader
	calculator *fee.Calculator
	log        audit.QuoteLog
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(structures StructureResolver, plans PlanReader, log audit.QuoteLog, logger *zap.Logger) *Service {
	return &Service{
		structures: structures,
		plans:      plans,
		calculator: fee.NewCalculator(),
		log:        log,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *Service) Quote(ctx context.Context, req Request) (*models.FeeQuote, error) {
	req.MerchantID = strings.TrimSpace(req.MerchantID)
	if req.MerchantID == "" {
		return nil, apperr.ErrMerchantRequired
	}
	if req.AsOf.IsZero() {
		return nil, apperr.NewValidationError([]string{"as_of is required"})
	}
	if req.CumulativeVolume.IsNegative() {
		return nil, apperr.ErrInvalidVolume
	}

	q := &models.FeeQuote{
		MerchantID:       req.MerchantID,
		Amount:           req.Amount,
		CumulativeVolume: req.CumulativeVolume,
		AsOf:             req.AsOf.UTC(),
	}

	result, err := s.price(ctx, req, q)
	if err != nil {
		return nil, err
	}

	q.ID = uuid.NewString()
	q.Currency = result.Currency
	q.Result = *result
	q.CreatedAt = s.now().UTC()

	if err := s.log.Record(ctx, q); err != nil {
		s.logger.Warn("failed to record fee quote",
			zap.String("merchant_id", q.MerchantID),
			zap.String("quote_id", q.ID),
			zap.Error(err))
	}

	s.logger.Debug("fee quoted",
		zap.String("merchant_id", q.MerchantID),
		zap.String("source", q.Source),
		zap.String("fee_amount", q.Result.FeeAmount.StringFixed(fee.MoneyPlaces)))
	return q, nil
}

// price fills q.Source and q.FeeStructureID and returns the computed result.
func (s *Service) price(ctx context.Context, req Request, q *models.FeeQuote) (*models.FeeResult, error) {
	structure, err := s.structures.EffectiveStructure(ctx, req.MerchantID)
	switch {
	case err == nil:
		q.Source = models.QuoteSourceFeeStructure
		q.FeeStructureID = structure.ID
		return s.calculator.Compute(*structure, fee.Input{
			Amount:           req.Amount,
			Currency:         req.Currency,
			CumulativeVolume: req.CumulativeVolume,
			AsOf:             req.AsOf,
		})
	case !errors.Is(err, apperr.ErrNoAssignment):
		return nil, fmt.Errorf("failed to resolve fee structure: %w", err)
	}

	plan, err := s.plans.Get(ctx, req.MerchantID)
	switch {
	case err == nil && !plan.EffectiveStartDate.After(req.AsOf):
		q.Source = models.QuoteSourcePricingPlan
		return pricing.Quote(*plan, req.Amount, req.Currency)
	case err != nil && !errors.Is(err, apperr.ErrNoPricingPlan):
		return nil, err
	}

	q.Source = models.QuoteSourceDefaultPlan
	return pricing.Quote(s.plans.Default(), req.Amount, req.Currency)
}

// List returns the merchant's recorded quotes, newest first.
func (s *Service) List(ctx context.Context, merchantID string, limit, offset int) ([]models.FeeQuote, int64, error) {
	quotes, total, err := s.log.ListByMerchant(ctx, merchantID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if quotes == nil {
		quotes = []models.FeeQuote{}
	}
	return quotes, total, nil
}
