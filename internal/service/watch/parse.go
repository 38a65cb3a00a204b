package watch

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type watchSpec struct {
	Symbol string
	Min    decimal.Decimal
	Max    decimal.Decimal
}

// parseWatch parses "SYMBOL min-max", e.g. "BTCUSDT 90000-90500".
// The symbol is normalized to uppercase. Bounds keep their input order,
// an inverted range is accepted and simply never matches.
func parseWatch(text string) (watchSpec, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) != 2 {
		return watchSpec{}, fmt.Errorf("%w: want two tokens, got %d", ErrParse, len(parts))
	}

	bounds := strings.Split(parts[1], "-")
	if len(bounds) != 2 {
		return watchSpec{}, fmt.Errorf("%w: range %q is not min-max", ErrParse, parts[1])
	}

	minPrice, err := decimal.NewFromString(bounds[0])
	if err != nil {
		return watchSpec{}, fmt.Errorf("%w: bad min %q", ErrParse, bounds[0])
	}
	maxPrice, err := decimal.NewFromString(bounds[1])
	if err != nil {
		return watchSpec{}, fmt.Errorf("%w: bad max %q", ErrParse, bounds[1])
	}

	return watchSpec{
		Symbol: strings.ToUpper(parts[0]),
		Min:    minPrice,
		Max:    maxPrice,
	}, nil
}
