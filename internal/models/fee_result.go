package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeResult is the outcome of applying a fee structure or pricing plan to
// one transaction.
type FeeResult struct {
	FeeAmount decimal.Decimal   `json:"fee_amount"`
	Currency  string            `json:"currency"`
	Breakdown []RuleApplication `json:"breakdown"`
}

// RuleApplication records one contributing rule for audit.
type RuleApplication struct {
	RuleIndex     int             `json:"rule_index"`
	RuleType      RuleType        `json:"rule_type"`
	ParameterName string          `json:"parameter_name,omitempty"`
	Rate          decimal.Decimal `json:"rate"`
	Tier          *VolumeTier     `json:"tier,omitempty"`
	Contribution  decimal.Decimal `json:"contribution"`
}

// Quote sources.
const (
	QuoteSourceFeeStructure = "fee_structure"
	QuoteSourcePricingPlan  = "pricing_plan"
	QuoteSourceDefaultPlan  = "default_pricing_plan"
)

// FeeQuote is the audit record of a computed fee.
type FeeQuote struct {
	ID               string          `json:"id"`
	MerchantID       string          `json:"merchant_id"`
	Source           string          `json:"source"`
	FeeStructureID   string          `json:"fee_structure_id,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	CumulativeVolume decimal.Decimal `json:"cumulative_volume"`
	AsOf             time.Time       `json:"as_of"`
	Result           FeeResult       `json:"result"`
	CreatedAt        time.Time       `json:"created_at"`
}
