// Package pricing manages merchant pricing plans (MDR plus a fixed fee) and
// prices transactions against them.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"acquiring/internal/config"
	apperr "acquiring/internal/errors"
	"acquiring/internal/models"
	"acquiring/internal/services/fee"
	"acquiring/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	ParameterMDR      = "mdr"
	ParameterFixedFee = "fixed_fee"
)

type Store interface {
	Upsert(ctx context.Context, plan *models.PricingPlan) error
	GetByMerchant(ctx context.Context, merchantID string) (*models.PricingPlan, error)
}

type Service struct {
	store    Store
	defaults models.PricingPlan
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(store Store, defaults models.PricingPlan, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		defaults: defaults,
		logger:   logger,
		now:      time.Now,
	}
}

// DefaultPlan builds the platform plan from configuration.
func DefaultPlan(cfg config.DefaultPlanConfig) (models.PricingPlan, error) {
	mdr, err := decimal.NewFromString(cfg.MDR)
	if err != nil {
		return models.PricingPlan{}, fmt.Errorf("invalid DEFAULT_MDR %q: %w", cfg.MDR, err)
	}
	fixed, err := decimal.NewFromString(cfg.FixedFee)
	if err != nil {
		return models.PricingPlan{}, fmt.Errorf("invalid DEFAULT_FIXED_FEE %q: %w", cfg.FixedFee, err)
	}

	in := validation.PricingPlanInput{
		MerchantID: "platform",
		MDR:        &mdr,
		FixedFee:   &fixed,
		Currencies: cfg.Currencies,
	}
	if res := validation.ValidatePricingPlan(in); !res.Valid {
		return models.PricingPlan{}, fmt.Errorf("invalid default pricing plan: %s", strings.Join(res.Errors, "; "))
	}

	return models.PricingPlan{
		MDR:        mdr,
		FixedFee:   fixed,
		Currencies: models.NewCurrencySet(cfg.Currencies),
	}, nil
}

// Default returns the platform plan.
func (s *Service) Default() models.PricingPlan {
	return s.defaults
}

// Upsert validates in and replaces the merchant's current plan.
func (s *Service) Upsert(ctx context.Context, in validation.PricingPlanInput) (*models.PricingPlan, error) {
	in.MerchantID = strings.TrimSpace(in.MerchantID)
	if res := validation.ValidatePricingPlan(in); !res.Valid {
		return nil, apperr.NewValidationError(res.Errors)
	}

	now := s.now().UTC()
	plan := &models.PricingPlan{
		ID:                 uuid.NewString(),
		MerchantID:         in.MerchantID,
		MDR:                *in.MDR,
		FixedFee:           *in.FixedFee,
		Currencies:         models.NewCurrencySet(in.Currencies),
		EffectiveStartDate: now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if in.EffectiveStartDate != nil {
		plan.EffectiveStartDate = in.EffectiveStartDate.UTC()
	}

	if err := s.store.Upsert(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to save pricing plan: %w", err)
	}

	s.logger.Info("pricing plan replaced",
		zap.String("merchant_id", plan.MerchantID),
		zap.String("mdr", plan.MDR.String()),
		zap.String("fixed_fee", plan.FixedFee.String()))
	return plan, nil
}

// Get returns the merchant's current plan or ErrNoPricingPlan.
func (s *Service) Get(ctx context.Context, merchantID string) (*models.PricingPlan, error) {
	plan, err := s.store.GetByMerchant(ctx, merchantID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrNoPricingPlan
		}
		return nil, fmt.Errorf("failed to load pricing plan: %w", err)
	}
	return plan, nil
}

// Quote prices amount under plan: round(amount * mdr / 100) + fixed_fee,
// rounded half to even. An empty currency means the plan's first currency.
func Quote(plan models.PricingPlan, amount decimal.Decimal, currency string) (*models.FeeResult, error) {
	if !amount.IsPositive() {
		return nil, apperr.ErrInvalidAmount
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" && len(plan.Currencies) > 0 {
		currency = plan.Currencies[0]
	}
	if !plan.Currencies.Contains(currency) {
		return nil, fmt.Errorf("%w: %s", apperr.ErrCurrencyNotSupported, currency)
	}

	mdr := fee.RoundMoney(fee.Percentage(amount, plan.MDR))
	fixed := fee.RoundMoney(plan.FixedFee)

	return &models.FeeResult{
		FeeAmount: fee.RoundMoney(mdr.Add(fixed)),
		Currency:  currency,
		Breakdown: []models.RuleApplication{
			{
				RuleIndex:     1,
				RuleType:      models.RuleTypePercentage,
				ParameterName: ParameterMDR,
				Rate:          plan.MDR,
				Contribution:  mdr,
			},
			{
				RuleIndex:     2,
				RuleType:      models.RuleTypeFixed,
				ParameterName: ParameterFixedFee,
				Rate:          plan.FixedFee,
				Contribution:  fixed,
			},
		},
	}, nil
}
