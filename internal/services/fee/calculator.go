package fee

import (
	"fmt"
	"strings"
	"time"

	apperr "acquiring/internal/errors"
	"acquiring/internal/models"

	"github.com/shopspring/decimal"
)

// Calculator applies fee rules to transactions. It holds no state and is
// safe for concurrent use.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// ComputeRule prices a single rule. The bool result is false when the rule
// is outside its effective window at asOf and contributes nothing.
// tiers are the structure level tiers referenced by tiered rules; a rule
// that still carries inline tiers uses those instead.
func (c *Calculator) ComputeRule(
	rule models.FeeRule,
	tiers []models.VolumeTier,
	amount, volume decimal.Decimal,
	asOf time.Time,
) (models.RuleApplication, bool, error) {
	if !rule.ActiveAt(asOf) {
		return models.RuleApplication{}, false, nil
	}

	app := models.RuleApplication{
		RuleType:      rule.RuleType,
		ParameterName: rule.ParameterName,
	}

	switch rule.RuleType {
	case models.RuleTypeFixed:
		if rule.FeeValue == nil {
			return app, false, apperr.ErrMalformedRule
		}
		app.Rate = *rule.FeeValue
		app.Contribution = RoundMoney(*rule.FeeValue)

	case models.RuleTypePercentage:
		if rule.FeeValue == nil {
			return app, false, apperr.ErrMalformedRule
		}
		app.Rate = *rule.FeeValue
		app.Contribution = RoundMoney(Percentage(amount, *rule.FeeValue))

	case models.RuleTypeTiered:
		if len(rule.Tiers) > 0 {
			tiers = rule.Tiers
		}
		if err := checkTiers(tiers); err != nil {
			return app, false, err
		}
		tier, ok := ResolveTier(tiers, volume)
		if !ok {
			return app, false, fmt.Errorf("%w: volume %s", apperr.ErrTierNotFound, volume.String())
		}
		app.Rate = *tier.FeeValue
		app.Tier = &tier
		app.Contribution = RoundMoney(Percentage(amount, *tier.FeeValue))

	default:
		return app, false, fmt.Errorf("%w: %q", apperr.ErrUnsupportedRuleType, string(rule.RuleType))
	}

	return app, true, nil
}

// Compute sums every applicable rule of the structure. Contributions are
// rounded individually and the total is rounded again. The amount and volume
// are in the structure's currency; a different input currency is rejected.
// The structure is not modified.
func (c *Calculator) Compute(structure models.FeeStructure, in Input) (*models.FeeResult, error) {
	if !in.Amount.IsPositive() {
		computationsTotal.WithLabelValues("invalid_input").Inc()
		return nil, apperr.ErrInvalidAmount
	}
	if in.CumulativeVolume.IsNegative() {
		computationsTotal.WithLabelValues("invalid_input").Inc()
		return nil, apperr.ErrInvalidVolume
	}

	currency := structure.Currency
	switch {
	case currency == "":
		currency = in.Currency
	case in.Currency != "" && !strings.EqualFold(in.Currency, currency):
		computationsTotal.WithLabelValues("invalid_input").Inc()
		return nil, fmt.Errorf("%w: %s, structure bills in %s", apperr.ErrCurrencyNotSupported, in.Currency, currency)
	}

	result := &models.FeeResult{
		FeeAmount: decimal.Zero,
		Currency:  currency,
		Breakdown: make([]models.RuleApplication, 0, len(structure.Rules)),
	}

	total := decimal.Zero
	for i, rule := range structure.Rules {
		app, applied, err := c.ComputeRule(rule, structure.VolumeTiers, in.Amount, in.CumulativeVolume, in.AsOf)
		if err != nil {
			computationsTotal.WithLabelValues("error").Inc()
			return nil, &apperr.ComputationError{RuleIndex: i + 1, Err: err}
		}
		if !applied {
			continue
		}
		app.RuleIndex = i + 1
		total = total.Add(app.Contribution)
		result.Breakdown = append(result.Breakdown, app)
		ruleApplicationsTotal.WithLabelValues(string(app.RuleType)).Inc()
	}

	result.FeeAmount = RoundMoney(total)

	computationsTotal.WithLabelValues("ok").Inc()
	feeAmounts.Observe(result.FeeAmount.InexactFloat64())
	return result, nil
}

func checkTiers(tiers []models.VolumeTier) error {
	for i, t := range tiers {
		if t.MinVolume == nil || t.FeeValue == nil {
			return fmt.Errorf("%w: tier %d", apperr.ErrMalformedTier, i+1)
		}
	}
	return nil
}
