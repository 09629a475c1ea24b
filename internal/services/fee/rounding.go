package fee

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places fees are rounded to.
const MoneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds half to even (banker's rounding) to MoneyPlaces. It is
// applied to every rule contribution and again to the total, which keeps
// repeated calculations stable.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(MoneyPlaces)
}

// Percentage returns amount * rate / 100, unrounded.
func Percentage(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(hundred)
}
