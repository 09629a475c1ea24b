package assignment

import "acquiring/internal/models"

// ResolveEffective picks the merchant's effective assignment: the one with
// the latest CreatedAt. On equal timestamps the later slice position wins, so
// callers should pass assignments in persistence order. Assignments of other
// merchants are ignored.
func ResolveEffective(merchantID string, assignments []models.MerchantFeeAssignment) (*models.MerchantFeeAssignment, bool) {
	var best *models.MerchantFeeAssignment
	for i := range assignments {
		a := assignments[i]
		if a.MerchantID != merchantID {
			continue
		}
		if best == nil || !a.CreatedAt.Before(best.CreatedAt) {
			best = &a
		}
	}
	return best, best != nil
}
