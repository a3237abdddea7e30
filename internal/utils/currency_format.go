package utils

import "github.com/shopspring/decimal"

// FormatRupees formats an amount for display in messages and statements.
// Example: 400 returns "₹400", 12.345 returns "₹12.35".
func FormatRupees(amount decimal.Decimal) string {
	return "₹" + amount.Round(2).String()
}

// FormatRupeesAbs formats the absolute value of an amount. Reminder messages
// always carry the magnitude; the sign is conveyed by the wording.
func FormatRupeesAbs(amount decimal.Decimal) string {
	return FormatRupees(amount.Abs())
}
