package pricing

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Strategy string

const (
	StrategyPercentage  Strategy = "percentage"
	StrategyFixedAmount Strategy = "fixed_amount"
	StrategyRoundUp     Strategy = "round_up"
	StrategyCompetitive Strategy = "competitive"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

func ParseStrategy(raw string) (Strategy, error) {
	strategy := Strategy(strings.ToLower(raw))
	switch strategy {
	case StrategyPercentage, StrategyFixedAmount, StrategyRoundUp, StrategyCompetitive:
		return strategy, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownStrategy, raw)
	}
}

// Limits clamp a computed price. Zero means unbounded; the floor of one
// ruble always applies.
type Limits struct {
	Min float64
	Max float64
}

func (lim Limits) clamp(price float64) float64 {
	if lim.Min > 0 && price < lim.Min {
		price = lim.Min
	}

	if lim.Max > 0 && price > lim.Max {
		price = lim.Max
	}

	if price < 1 {
		price = 1
	}

	return price
}

// Calculate applies a strategy to the current price and returns the new
// price, rounded to kopecks and clamped, with a short reason for change
// logs.
//
// percentage and round_up treat value as a percent delta, fixed_amount as an
// absolute delta, competitive as a multiplier.
func Calculate(price float64, strategy Strategy, value float64, lim Limits) (float64, string) {
	var (
		newPrice float64
		reason   string
	)

	switch strategy {
	case StrategyPercentage:
		newPrice = price * (1 + value/100)
		reason = fmt.Sprintf("%+.1f%%", value)
	case StrategyFixedAmount:
		newPrice = price + value
		reason = fmt.Sprintf("%+.2f", value)
	case StrategyRoundUp:
		newPrice = roundByMagnitude(price * (1 + value/100))
		reason = fmt.Sprintf("%+.1f%% rounded", value)
	case StrategyCompetitive:
		newPrice = competitive(price * value)
		reason = fmt.Sprintf("x%.2f competitive", value)
	default:
		newPrice = price
		reason = "unchanged"
	}

	newPrice = lim.clamp(math.Round(newPrice*100) / 100)

	return newPrice, fmt.Sprintf("%s -> %.2f", reason, newPrice)
}

// roundByMagnitude rounds to tens below 100, hundreds below 1000 and
// thousands above.
func roundByMagnitude(price float64) float64 {
	switch {
	case price < 100:
		return math.Round(price/10) * 10
	case price < 1000:
		return math.Round(price/100) * 100
	default:
		return math.Round(price/1000) * 1000
	}
}

// competitive forces a .99 ending on non-integral results.
func competitive(price float64) float64 {
	if price == math.Trunc(price) {
		return price
	}

	return math.Trunc(price) + 0.99
}
