package validation

import "regexp"

var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

const (
	// String lengths
	MaxNameLength        = 120
	MaxDescriptionLength = 500

	// Scale of the pricing_plans numeric columns
	MaxMDRPlaces      = 4
	MaxFixedFeePlaces = 2
)
