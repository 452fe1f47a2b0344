package model

import (
	"errors"
	"fmt"
	"strings"
)

type StockType string

const (
	StockTypeFit        StockType = "FIT"
	StockTypeFreeze     StockType = "FREEZE"
	StockTypeAvailable  StockType = "AVAILABLE"
	StockTypeQuarantine StockType = "QUARANTINE"
	StockTypeDefect     StockType = "DEFECT"
	StockTypeExpired    StockType = "EXPIRED"
)

var ErrUnknownStockType = errors.New("unknown stock type")

func ParseStockType(raw string) (StockType, error) {
	typ := StockType(strings.ToUpper(raw))
	switch typ {
	case StockTypeFit, StockTypeFreeze, StockTypeAvailable,
		StockTypeQuarantine, StockTypeDefect, StockTypeExpired:
		return typ, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownStockType, raw)
	}
}

type StockCount struct {
	Type  StockType `json:"type"`
	Count int64     `json:"count"`
}

type TurnoverSummary struct {
	Turnover     string  `json:"turnover,omitempty"`
	TurnoverDays float64 `json:"turnoverDays,omitempty"`
}

type OfferStocks struct {
	OfferID  string           `json:"offerId"`
	Turnover *TurnoverSummary `json:"turnoverSummary,omitempty"`
	Stocks   []StockCount     `json:"stocks,omitempty"`
}

type WarehouseStocks struct {
	WarehouseID int64         `json:"warehouseId"`
	Offers      []OfferStocks `json:"offers,omitempty"`
}

func (stocks OfferStocks) Count(typ StockType) int64 {
	for _, stock := range stocks.Stocks {
		if stock.Type == typ {
			return stock.Count
		}
	}

	return 0
}
