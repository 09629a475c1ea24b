package models

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type RuleType string

const (
	RuleTypePercentage RuleType = "percentage"
	RuleTypeFixed      RuleType = "fixed"
	RuleTypeTiered     RuleType = "tiered"
)

func (t RuleType) Valid() bool {
	switch t {
	case RuleTypePercentage, RuleTypeFixed, RuleTypeTiered:
		return true
	}
	return false
}

// FeeStructure is a named bundle of fee rules assignable to merchants.
// VolumeTiers is the canonical tier list; tiered rules reference it.
type FeeStructure struct {
	ID            string       `gorm:"primaryKey;type:uuid" json:"id"`
	Name          string       `gorm:"not null;index" json:"name"`
	Description   string       `json:"description,omitempty"`
	Currency      string       `gorm:"size:3;not null" json:"currency"`
	IsActive      bool         `gorm:"not null;index" json:"is_active"`
	IsVolumeBased bool         `gorm:"not null" json:"is_volume_based"`
	Rules         []FeeRule    `gorm:"type:jsonb;serializer:json" json:"rules"`
	VolumeTiers   []VolumeTier `gorm:"type:jsonb;serializer:json" json:"volume_tiers"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// FeeRule is one additive component of a fee structure. FeeValue is
// percentage points for percentage rules, currency units for fixed rules and
// a placeholder for tiered rules.
type FeeRule struct {
	RuleType      RuleType         `json:"rule_type"`
	ParameterName string           `json:"parameter_name"`
	FeeValue      *decimal.Decimal `json:"fee_value"`
	Tiers         []VolumeTier     `json:"tiers,omitempty"`
	EffectiveFrom *time.Time       `json:"effective_from,omitempty"`
	EffectiveTo   *time.Time       `json:"effective_to,omitempty"`
}

// ActiveAt reports whether asOf falls inside the rule's effective window.
// Both bounds are inclusive and an absent bound is unbounded.
func (r FeeRule) ActiveAt(asOf time.Time) bool {
	if r.EffectiveFrom != nil && asOf.Before(*r.EffectiveFrom) {
		return false
	}
	if r.EffectiveTo != nil && asOf.After(*r.EffectiveTo) {
		return false
	}
	return true
}

// VolumeTier is a cumulative volume band [MinVolume, MaxVolume) with its own
// fee percentage. A nil or zero MaxVolume is unbounded above.
type VolumeTier struct {
	MinVolume *decimal.Decimal `json:"min_volume"`
	MaxVolume *decimal.Decimal `json:"max_volume,omitempty"`
	FeeValue  *decimal.Decimal `json:"fee_value"`
}

func (t VolumeTier) OpenEnded() bool {
	return t.MaxVolume == nil || t.MaxVolume.IsZero()
}

// Contains reports whether volume falls inside the tier. A nil MinVolume is
// treated as zero.
func (t VolumeTier) Contains(volume decimal.Decimal) bool {
	min := decimal.Zero
	if t.MinVolume != nil {
		min = *t.MinVolume
	}
	if volume.LessThan(min) {
		return false
	}
	return t.OpenEnded() || volume.LessThan(*t.MaxVolume)
}

// UnmarshalJSON accepts fee_percentage as an alias of fee_value.
func (t *VolumeTier) UnmarshalJSON(data []byte) error {
	var raw struct {
		MinVolume     *decimal.Decimal `json:"min_volume"`
		MaxVolume     *decimal.Decimal `json:"max_volume"`
		FeeValue      *decimal.Decimal `json:"fee_value"`
		FeePercentage *decimal.Decimal `json:"fee_percentage"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t.MinVolume = raw.MinVolume
	t.MaxVolume = raw.MaxVolume
	t.FeeValue = raw.FeeValue
	if t.FeeValue == nil {
		t.FeeValue = raw.FeePercentage
	}
	return nil
}

// Clone returns a deep copy so callers can normalize without touching the
// original value.
func (s FeeStructure) Clone() FeeStructure {
	out := s
	out.Rules = make([]FeeRule, len(s.Rules))
	for i, r := range s.Rules {
		out.Rules[i] = r.clone()
	}
	out.VolumeTiers = cloneTiers(s.VolumeTiers)
	return out
}

// Normalized returns a copy where inline rule tiers have been hoisted into
// VolumeTiers (only when the structure has none of its own), tiered rules
// carry no inline tiers, and VolumeTiers are sorted by MinVolume.
func (s FeeStructure) Normalized() FeeStructure {
	out := s.Clone()
	for i := range out.Rules {
		r := &out.Rules[i]
		if r.RuleType != RuleTypeTiered {
			continue
		}
		if len(out.VolumeTiers) == 0 && len(r.Tiers) > 0 {
			out.VolumeTiers = cloneTiers(r.Tiers)
		}
		r.Tiers = nil
		out.IsVolumeBased = true
	}
	out.VolumeTiers = SortTiers(out.VolumeTiers)
	if out.Rules == nil {
		out.Rules = []FeeRule{}
	}
	if out.VolumeTiers == nil {
		out.VolumeTiers = []VolumeTier{}
	}
	return out
}

// HasTieredRule reports whether any rule depends on the volume tiers.
func (s FeeStructure) HasTieredRule() bool {
	for _, r := range s.Rules {
		if r.RuleType == RuleTypeTiered {
			return true
		}
	}
	return false
}

// SortTiers returns a copy of tiers ordered by ascending MinVolume. The sort
// is stable so equal minimums keep their input order.
func SortTiers(tiers []VolumeTier) []VolumeTier {
	out := cloneTiers(tiers)
	sort.SliceStable(out, func(i, j int) bool {
		return minOf(out[i]).LessThan(minOf(out[j]))
	})
	return out
}

func minOf(t VolumeTier) decimal.Decimal {
	if t.MinVolume == nil {
		return decimal.Zero
	}
	return *t.MinVolume
}

func (r FeeRule) clone() FeeRule {
	out := r
	out.FeeValue = cloneDecimal(r.FeeValue)
	out.Tiers = cloneTiers(r.Tiers)
	if r.EffectiveFrom != nil {
		from := *r.EffectiveFrom
		out.EffectiveFrom = &from
	}
	if r.EffectiveTo != nil {
		to := *r.EffectiveTo
		out.EffectiveTo = &to
	}
	return out
}

func cloneTiers(tiers []VolumeTier) []VolumeTier {
	if tiers == nil {
		return nil
	}
	out := make([]VolumeTier, len(tiers))
	for i, t := range tiers {
		out[i] = VolumeTier{
			MinVolume: cloneDecimal(t.MinVolume),
			MaxVolume: cloneDecimal(t.MaxVolume),
			FeeValue:  cloneDecimal(t.FeeValue),
		}
	}
	return out
}

func cloneDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}

// Dec is a shorthand for building optional decimal fields.
func Dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
