package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var frenchMonths = []string{
	"janvier",
	"février",
	"mars",
	"avril",
	"mai",
	"juin",
	"juillet",
	"août",
	"septembre",
	"octobre",
	"novembre",
	"décembre",
}

var englishMonths = []string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// currencySymbols maps supported currency codes to their display symbol.
// Unmapped codes fall back to the raw code.
var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"CHF": "CHF",
	"CAD": "$ CA",
	"MAD": "DH",
}

// KnownCurrency reports whether the currency code has a display symbol.
func KnownCurrency(code string) bool {
	_, ok := currencySymbols[code]
	return ok
}

// CurrencySymbol returns the display symbol for a currency code, or the code
// itself when unmapped.
func CurrencySymbol(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code
}

// FormatAmount renders an amount with grouped thousands, two decimals and the
// currency symbol, e.g. "12 500,00 €" for fr and "12,500.00 $" for en.
func FormatAmount(amount float64, currency, lang string) string {
	return FormatNumber(amount, lang) + " " + CurrencySymbol(currency)
}

// FormatNumber renders a number with two decimals and locale separators.
// French uses a narrow space for thousands and a comma decimal mark.
func FormatNumber(amount float64, lang string) string {
	rounded := Round2(amount)
	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	cents := int64(math.Round(rounded * 100))
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	thousandSep := " "
	decimalSep := ","
	if lang == "en" {
		thousandSep = ","
		decimalSep = "."
	}

	out := strings.Join(groups, thousandSep) + decimalSep
	if frac < 10 {
		out += "0"
	}
	out += strconv.FormatInt(frac, 10)

	if negative {
		out = "-" + out
	}
	return out
}

// Round2 rounds to two decimal places using round-half-up.
func Round2(value float64) float64 {
	if value < 0 {
		return -math.Floor(-value*100+0.5) / 100
	}
	return math.Floor(value*100+0.5) / 100
}

// FormatDate returns the date in the locale's short form, e.g. "01/06/2024"
// for fr and "06/01/2024" for en.
func FormatDate(t time.Time, lang string) string {
	if t.IsZero() {
		return ""
	}
	if lang == "en" {
		return t.Format("01/02/2006")
	}
	return t.Format("02/01/2006")
}

// FormatMonthLabel returns a human month label such as "juin 2024".
func FormatMonthLabel(t time.Time, lang string) string {
	if t.IsZero() {
		return ""
	}
	monthIndex := int(t.Month()) - 1
	names := frenchMonths
	if lang == "en" {
		names = englishMonths
	}
	if monthIndex < 0 || monthIndex >= len(names) {
		return t.Format("2006-01")
	}
	return names[monthIndex] + " " + strconv.Itoa(t.Year())
}
