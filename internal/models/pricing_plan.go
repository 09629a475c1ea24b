package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingPlan is the per-merchant MDR + fixed fee plan. A merchant has at
// most one current plan; writing a new one replaces it.
type PricingPlan struct {
	ID                 string          `gorm:"primaryKey;type:uuid" json:"id"`
	MerchantID         string          `gorm:"uniqueIndex;not null" json:"merchant_id"`
	MDR                decimal.Decimal `gorm:"type:numeric(9,4);not null" json:"mdr"`
	FixedFee           decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"fixed_fee"`
	Currencies         CurrencySet     `gorm:"type:jsonb;not null" json:"currencies"`
	EffectiveStartDate time.Time       `json:"effective_start_date"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
