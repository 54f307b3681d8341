package format

import (
	"strings"

	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"IDR": "Rp ",
}

func Symbol(currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	if code == "" {
		return "$"
	}
	return code + " "
}

// Money renders amount with two decimals and the currency symbol, e.g.
// "$878.18". Unsupported amount types render as zero.
func Money(amount interface{}, currency string) string {
	var decAmount decimal.Decimal
	switch v := amount.(type) {
	case decimal.Decimal:
		decAmount = v
	case float64:
		decAmount = decimal.NewFromFloat(v)
	case int:
		decAmount = decimal.NewFromInt(int64(v))
	case int64:
		decAmount = decimal.NewFromInt(v)
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			decAmount = decimal.Zero
			break
		}
		decAmount = parsed
	default:
		decAmount = decimal.Zero
	}

	ac := accounting.Accounting{
		Symbol:         Symbol(currency),
		Precision:      2,
		Thousand:       ",",
		Decimal:        ".",
		Format:         "%s%v",
		FormatNegative: "-%s%v",
		FormatZero:     "%s%v",
	}
	return ac.FormatMoneyDecimal(decAmount.Round(2))
}
