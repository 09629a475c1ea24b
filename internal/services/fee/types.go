package fee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Input is one transaction to price. AsOf decides which rules are inside
// their effective window; the engine never reads the clock.
type Input struct {
	Amount           decimal.Decimal
	Currency         string
	CumulativeVolume decimal.Decimal
	AsOf             time.Time
}
