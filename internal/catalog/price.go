package catalog

import (
	"math"
	"strconv"
	"strings"
)

// FormatPrice renders a price with two decimals.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}

// ParsePrice reads a price typed by the user. Empty input reports ok=false
// with a nil error: the caller keeps the current price. Surrounding
// whitespace is ignored, but whitespace alone is not a price.
func ParsePrice(text string) (price float64, ok bool, err error) {
	if text == "" {
		return 0, false, nil
	}
	value, perr := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if perr != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, false, &ValidationError{Reason: ErrInvalidPrice, Input: text}
	}
	return value, true, nil
}
