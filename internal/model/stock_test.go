package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseStockType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		want      StockType
		wantError error
	}{
		{
			name: "exact value",
			raw:  "FIT",
			want: StockTypeFit,
		},
		{
			name: "lower case value",
			raw:  "defect",
			want: StockTypeDefect,
		},
		{
			name:      "unknown value",
			raw:       "BROKEN",
			want:      "",
			wantError: ErrUnknownStockType,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			typ, err := ParseStockType(test.raw)
			assert.Equal(t, test.want, typ)
			assert.ErrorIs(t, err, test.wantError)
		})
	}
}

func TestOfferStocks_Count(t *testing.T) {
	t.Parallel()

	stocks := OfferStocks{
		OfferID: "sku-1",
		Stocks: []StockCount{
			{Type: StockTypeFit, Count: 10},
			{Type: StockTypeDefect, Count: 2},
		},
	}

	assert.Equal(t, int64(10), stocks.Count(StockTypeFit))
	assert.Equal(t, int64(2), stocks.Count(StockTypeDefect))
	assert.Equal(t, int64(0), stocks.Count(StockTypeExpired))
}
