package feestructure

import (
	"strings"

	"acquiring/internal/models"
	"acquiring/internal/services/fee"
)

// Input is the write model for creating or replacing a fee structure.
// IsActive is optional: new structures default to active and updates keep
// the current state.
type Input struct {
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Currency      string              `json:"currency"`
	IsActive      *bool               `json:"is_active"`
	IsVolumeBased bool                `json:"is_volume_based"`
	Rules         []models.FeeRule    `json:"rules"`
	VolumeTiers   []models.VolumeTier `json:"volume_tiers"`
}

// Draft converts the input into an unsaved, unnormalized structure.
func (in Input) Draft() models.FeeStructure {
	return models.FeeStructure{
		Name:          strings.TrimSpace(in.Name),
		Description:   strings.TrimSpace(in.Description),
		Currency:      strings.ToUpper(strings.TrimSpace(in.Currency)),
		IsVolumeBased: in.IsVolumeBased,
		Rules:         in.Rules,
		VolumeTiers:   in.VolumeTiers,
	}
}

// Page is one page of a structure listing.
type Page struct {
	Items []models.FeeStructure
	Total int64
}

// TierWarnings reports gaps, overlaps and missing open-ended tiers. These do
// not fail validation but usually point at a typo in the tier bounds.
func TierWarnings(in Input) []string {
	warnings := fee.CheckTierContinuity(in.Draft().Normalized().VolumeTiers)
	if warnings == nil {
		warnings = []string{}
	}
	return warnings
}
