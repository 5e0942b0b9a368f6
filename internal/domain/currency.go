package domain

import (
	"fmt"
	"strings"
)

type Currency string

const (
	Currency_USD Currency = "USD"
	Currency_RMB Currency = "RMB"
)

// ParseCurrency normalizes CNY to RMB at the boundary; everything past
// this point works with the normalized value.
func ParseCurrency(s string) (Currency, error) {
	switch strings.ToUpper(s) {
	case "USD":
		return Currency_USD, nil
	case "RMB", "CNY":
		return Currency_RMB, nil
	}
	return "", fmt.Errorf("invalid currency %q", s)
}

// IsoCode returns the ISO 4217 code used on the wire with FX
// providers, which quote the yuan as CNY.
func (c Currency) IsoCode() string {
	if c == Currency_RMB {
		return "CNY"
	}
	return string(c)
}

type Market string

const (
	Market_US       Market = "US"
	Market_Shanghai Market = "SH"
	Market_Shenzhen Market = "SZ"
)

// ClassifySymbol maps a ticker to its exchange by suffix. Unsuffixed
// symbols are treated as US listings.
func ClassifySymbol(symbol string) Market {
	upper := strings.ToUpper(symbol)
	switch {
	case strings.HasSuffix(upper, ".SS"):
		return Market_Shanghai
	case strings.HasSuffix(upper, ".SZ"):
		return Market_Shenzhen
	}
	return Market_US
}

// Currency is the native quote currency for listings on the market.
func (m Market) Currency() Currency {
	switch m {
	case Market_Shanghai, Market_Shenzhen:
		return Currency_RMB
	}
	return Currency_USD
}

// NativeCurrency is shorthand for ClassifySymbol(symbol).Currency().
func NativeCurrency(symbol string) Currency {
	return ClassifySymbol(symbol).Currency()
}
