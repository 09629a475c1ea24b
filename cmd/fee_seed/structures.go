package main

import (
	"acquiring/internal/models"
	"acquiring/internal/services/feestructure"
)

// defaultStructures are the fee structures every environment starts with.
func defaultStructures() []feestructure.Input {
	return []feestructure.Input{
		{
			Name:        "Standard",
			Description: "2.5% of the transaction amount plus 0.30 per transaction",
			Currency:    "USD",
			Rules: []models.FeeRule{
				{RuleType: models.RuleTypePercentage, ParameterName: "transaction_amount", FeeValue: models.Dec("2.5")},
				{RuleType: models.RuleTypeFixed, ParameterName: "per_transaction", FeeValue: models.Dec("0.30")},
			},
		},
		{
			Name:          "Volume Saver",
			Description:   "3.0% below 1000 cumulative volume, 2.0% from 1000",
			Currency:      "USD",
			IsVolumeBased: true,
			Rules: []models.FeeRule{
				{RuleType: models.RuleTypeTiered, ParameterName: "transaction_amount", FeeValue: models.Dec("0")},
			},
			VolumeTiers: []models.VolumeTier{
				{MinVolume: models.Dec("0"), MaxVolume: models.Dec("1000"), FeeValue: models.Dec("3.0")},
				{MinVolume: models.Dec("1000"), FeeValue: models.Dec("2.0")},
			},
		},
	}
}
