package utils

import (
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount as a currency string with two decimal
// places and a fixed locale-agnostic "$" prefix, e.g. "$1234.50".
func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
