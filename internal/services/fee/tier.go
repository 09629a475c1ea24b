package fee

import (
	"fmt"

	"acquiring/internal/models"

	"github.com/shopspring/decimal"
)

// ResolveTier returns the first tier, in ascending MinVolume order, that
// contains volume. Overlaps resolve to the lowest MinVolume. The input slice
// is not modified.
func ResolveTier(tiers []models.VolumeTier, volume decimal.Decimal) (models.VolumeTier, bool) {
	for _, t := range models.SortTiers(tiers) {
		if t.Contains(volume) {
			return t, true
		}
	}
	return models.VolumeTier{}, false
}

// CheckTierContinuity describes gaps, overlaps and open-ended problems in a
// tier set. It is advisory: the validator accepts such sets and the resolver
// copes with them.
func CheckTierContinuity(tiers []models.VolumeTier) []string {
	var problems []string
	sorted := models.SortTiers(tiers)
	if len(sorted) == 0 {
		return problems
	}

	if first := sorted[0]; first.MinVolume != nil && first.MinVolume.IsPositive() {
		problems = append(problems, fmt.Sprintf("volumes below %s match no tier", first.MinVolume.String()))
	}

	openEnded := 0
	for i, t := range sorted {
		if t.OpenEnded() {
			openEnded++
		}
		if i == len(sorted)-1 || t.OpenEnded() {
			continue
		}
		next := sorted[i+1]
		nextMin := decimal.Zero
		if next.MinVolume != nil {
			nextMin = *next.MinVolume
		}
		switch {
		case t.MaxVolume.LessThan(nextMin):
			problems = append(problems, fmt.Sprintf("gap between %s and %s", t.MaxVolume.String(), nextMin.String()))
		case t.MaxVolume.GreaterThan(nextMin):
			problems = append(problems, fmt.Sprintf("tiers overlap between %s and %s", nextMin.String(), t.MaxVolume.String()))
		}
	}

	switch {
	case openEnded == 0:
		problems = append(problems, "no open-ended top tier")
	case openEnded > 1:
		problems = append(problems, fmt.Sprintf("%d open-ended tiers, expected 1", openEnded))
	}
	return problems
}
