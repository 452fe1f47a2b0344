package updater

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LoadPriceList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		skuColumn   string
		priceColumn string
		expect      map[string]float64
		expectError error
	}{
		{
			name:        "happy flow",
			input:       "sku,name,price\nSKU-1,Лампа,1234.56\nSKU-2,Стол,99\n",
			skuColumn:   "sku",
			priceColumn: "price",
			expect:      map[string]float64{"SKU-1": 1234.56, "SKU-2": 99},
			expectError: nil,
		},
		{
			name:        "russian number format",
			input:       "sku,price\nSKU-1,\"1 234,56\"\n",
			skuColumn:   "sku",
			priceColumn: "price",
			expect:      map[string]float64{"SKU-1": 1234.56},
			expectError: nil,
		},
		{
			name:        "header case insensitive",
			input:       "SKU,Price\nSKU-1,10\n",
			skuColumn:   "sku",
			priceColumn: "price",
			expect:      map[string]float64{"SKU-1": 10},
			expectError: nil,
		},
		{
			name:        "blank sku rows ignored",
			input:       "sku,price\n,10\nSKU-2,20\n",
			skuColumn:   "sku",
			priceColumn: "price",
			expect:      map[string]float64{"SKU-2": 20},
			expectError: nil,
		},
		{
			name:        "short rows ignored",
			input:       "sku,extra,price\nSKU-1\nSKU-2,x,30\n",
			skuColumn:   "sku",
			priceColumn: "price",
			expect:      map[string]float64{"SKU-2": 30},
			expectError: nil,
		},
		{
			name:        "missing sku column",
			input:       "id,price\nSKU-1,10\n",
			skuColumn:   "sku",
			priceColumn: "price",
			expect:      nil,
			expectError: ErrMissingColumn,
		},
		{
			name:        "missing price column",
			input:       "sku,cost\nSKU-1,10\n",
			skuColumn:   "sku",
			priceColumn: "price",
			expect:      nil,
			expectError: ErrMissingColumn,
		},
		{
			name:        "malformed price",
			input:       "sku,price\nSKU-1,ten\n",
			skuColumn:   "sku",
			priceColumn: "price",
			expect:      nil,
			expectError: ErrBadPrice,
		},
		{
			name:        "negative price",
			input:       "sku,price\nSKU-1,-5\n",
			skuColumn:   "sku",
			priceColumn: "price",
			expect:      nil,
			expectError: ErrBadPrice,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			result, err := LoadPriceList(strings.NewReader(test.input), test.skuColumn, test.priceColumn)
			assert.Equal(t, test.expect, result)
			assert.ErrorIs(t, err, test.expectError)
		})
	}
}
