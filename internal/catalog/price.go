package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var pricePattern = regexp.MustCompile(`(?i)(\d[\d,]*(?:\.\d+)?)\s*(crores?|cr|lakhs?|lacs?|l|k)?\b`)

var priceUnits = map[string]float64{
	"":       1,
	"k":      1_000,
	"l":      100_000,
	"lac":    100_000,
	"lacs":   100_000,
	"lakh":   100_000,
	"lakhs":  100_000,
	"cr":     10_000_000,
	"crore":  10_000_000,
	"crores": 10_000_000,
}

// ParsePriceValue extracts the first amount of a display price such as
// "₹25L - ₹1.2Cr per acre" and returns it in rupees.
func ParsePriceValue(priceRange string) (int64, bool) {
	m := pricePattern.FindStringSubmatch(priceRange)
	if m == nil {
		return 0, false
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	unit, ok := priceUnits[strings.ToLower(m[2])]
	if !ok {
		return 0, false
	}
	return int64(math.Round(amount * unit)), true
}
