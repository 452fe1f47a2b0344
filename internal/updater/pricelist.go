package updater

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrBadPrice      = errors.New("malformed price")
)

// LoadPriceList reads a CSV price list into a SKU to target price map.
// Columns are addressed by header name, case-insensitive. Prices accept
// both "1234.56" and "1 234,56" forms.
func LoadPriceList(r io.Reader, skuColumn, priceColumn string) (map[string]float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read price list header: %w", err)
	}

	skuIdx, priceIdx := -1, -1

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case strings.ToLower(skuColumn):
			skuIdx = i
		case strings.ToLower(priceColumn):
			priceIdx = i
		}
	}

	if skuIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, skuColumn)
	}

	if priceIdx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, priceColumn)
	}

	prices := make(map[string]float64)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read price list: %w", err)
		}

		if skuIdx >= len(record) || priceIdx >= len(record) {
			continue
		}

		sku := strings.TrimSpace(record[skuIdx])
		if sku == "" {
			continue
		}

		price, err := parsePrice(record[priceIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		prices[sku] = price
	}

	return prices, nil
}

var priceCleaner = strings.NewReplacer(" ", "", " ", "", ",", ".")

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(priceCleaner.Replace(strings.TrimSpace(raw)), 64)
	if err != nil || price <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadPrice, raw)
	}

	return price, nil
}
