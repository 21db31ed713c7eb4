package model

// Currency pairs an ISO code with its display symbol.
type Currency struct {
	Code   string
	Symbol string
}

// Currencies lists the supported display currencies.
var Currencies = []Currency{
	{"USD", "$"},
	{"EUR", "€"},
	{"GBP", "£"},
	{"JPY", "¥"},
	{"CAD", "C$"},
	{"AUD", "A$"},
	{"CHF", "Fr"},
	{"CNY", "¥"},
	{"INR", "₹"},
	{"BRL", "R$"},
	{"MXN", "$"},
	{"ZAR", "R"},
}

// CurrencySymbol returns the symbol for a currency code, falling back
// to "$" for unknown codes.
func CurrencySymbol(code string) string {
	for _, c := range Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return "$"
}

// ValidCurrency reports whether code is a supported currency.
func ValidCurrency(code string) bool {
	for _, c := range Currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}
