package validation

import (
	"fmt"

	"acquiring/internal/models"

	"github.com/shopspring/decimal"
)

// ValidateFeeStructure checks a fee structure draft before it is persisted.
// Overlapping or gapped tiers are accepted and left to the tier resolver.
// A structure has one tier set: inline rule tiers must match volume_tiers
// and each other. Rules and tiers are numbered from 1.
func ValidateFeeStructure(draft models.FeeStructure) Result {
	v := New()

	v.Required("", "name", draft.Name)
	v.Check(len(draft.Name) <= MaxNameLength, "name must be at most %d characters", MaxNameLength)
	v.Check(len(draft.Description) <= MaxDescriptionLength,
		"description must be at most %d characters", MaxDescriptionLength)
	if draft.Currency != "" {
		v.Check(currencyCodeRegex.MatchString(draft.Currency),
			"currency must be a 3-letter ISO 4217 code")
	}

	canonical := draft.VolumeTiers
	for i, rule := range draft.Rules {
		v.rule(i+1, rule, draft.VolumeTiers)

		if rule.RuleType != models.RuleTypeTiered || len(rule.Tiers) == 0 {
			continue
		}
		if len(canonical) == 0 {
			canonical = rule.Tiers
			continue
		}
		v.Check(sameTiers(canonical, rule.Tiers), "Rule %d: inline tiers conflict with volume_tiers", i+1)
	}

	for i, tier := range draft.VolumeTiers {
		v.tier(fmt.Sprintf("Volume tier %d: ", i+1), tier)
	}

	if draft.IsVolumeBased && len(draft.VolumeTiers) == 0 && !hasInlineTiers(draft.Rules) {
		v.AddError("volume_tiers: at least one tier is required for volume-based structures")
	}

	return v.Result()
}

func (v *Validator) rule(n int, rule models.FeeRule, structureTiers []models.VolumeTier) {
	prefix := fmt.Sprintf("Rule %d: ", n)

	switch {
	case rule.RuleType == "":
		v.AddError("%srule_type is required", prefix)
	case !rule.RuleType.Valid():
		v.AddError("%sInvalid rule_type %q", prefix, string(rule.RuleType))
	}

	v.Required(prefix, "parameter_name", rule.ParameterName)
	v.Check(rule.FeeValue != nil, "%sfee_value is required", prefix)

	if rule.RuleType == models.RuleTypeTiered {
		tiers := rule.Tiers
		if len(tiers) == 0 {
			tiers = structureTiers
		}
		if len(tiers) == 0 {
			v.AddError("%stiered rules require at least one tier", prefix)
		}
		// Structure level tiers are reported once, as "Volume tier M".
		for j, tier := range rule.Tiers {
			v.tier(fmt.Sprintf("Rule %d, Tier %d: ", n, j+1), tier)
		}
	}

	if rule.EffectiveFrom != nil && rule.EffectiveTo != nil && rule.EffectiveFrom.After(*rule.EffectiveTo) {
		v.AddError("%seffective_from must be before effective_to", prefix)
	}
}

func (v *Validator) tier(prefix string, tier models.VolumeTier) {
	v.Check(tier.MinVolume != nil, "%smin_volume is required", prefix)
	v.Check(tier.FeeValue != nil, "%sfee_value is required", prefix)
	if tier.MinVolume != nil {
		v.Check(!tier.MinVolume.IsNegative(), "%smin_volume must not be negative", prefix)
	}
}

func hasInlineTiers(rules []models.FeeRule) bool {
	for _, r := range rules {
		if r.RuleType == models.RuleTypeTiered && len(r.Tiers) > 0 {
			return true
		}
	}
	return false
}

// sameTiers compares two tier sets regardless of order. A zero max_volume
// equals an absent one.
func sameTiers(a, b []models.VolumeTier) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = models.SortTiers(a), models.SortTiers(b)
	for i := range a {
		if !sameDecimal(a[i].MinVolume, b[i].MinVolume) || !sameDecimal(a[i].FeeValue, b[i].FeeValue) {
			return false
		}
		if a[i].OpenEnded() != b[i].OpenEnded() {
			return false
		}
		if !a[i].OpenEnded() && !a[i].MaxVolume.Equal(*b[i].MaxVolume) {
			return false
		}
	}
	return true
}

func sameDecimal(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
