package validation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PricingPlanInput is the write model of a merchant pricing plan. Pointer
// fields distinguish a missing value from zero.
type PricingPlanInput struct {
	MerchantID         string           `json:"merchant_id"`
	MDR                *decimal.Decimal `json:"mdr"`
	FixedFee           *decimal.Decimal `json:"fixed_fee"`
	Currencies         []string         `json:"currencies"`
	EffectiveStartDate *time.Time       `json:"effective_start_date"`
}

// ValidatePricingPlan checks a pricing plan before it replaces the current
// plan of a merchant.
func ValidatePricingPlan(in PricingPlanInput) Result {
	v := New()

	v.Required("", "merchant_id", in.MerchantID)

	if in.MDR == nil {
		v.AddError("mdr is required")
	} else {
		v.Check(in.MDR.IsPositive(), "mdr must be greater than 0")
		v.Check(in.MDR.LessThanOrEqual(decimal.NewFromInt(100)), "mdr must not exceed 100")
		v.Check(in.MDR.Equal(in.MDR.Truncate(MaxMDRPlaces)), "mdr must have at most %d decimal places", MaxMDRPlaces)
	}

	if in.FixedFee == nil {
		v.AddError("fixed_fee is required")
	} else {
		v.Check(!in.FixedFee.IsNegative(), "fixed_fee must not be negative")
		v.Check(in.FixedFee.Equal(in.FixedFee.Truncate(MaxFixedFeePlaces)),
			"fixed_fee must have at most %d decimal places", MaxFixedFeePlaces)
	}

	if len(in.Currencies) == 0 {
		v.AddError("currencies must contain at least one currency")
	}
	for _, c := range in.Currencies {
		code := strings.ToUpper(strings.TrimSpace(c))
		v.Check(currencyCodeRegex.MatchString(code), "currency %q is not a valid ISO 4217 code", c)
	}

	return v.Result()
}

