package sandbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihalio25/yandex-market-partner-api/internal/config"
	"github.com/mihalio25/yandex-market-partner-api/internal/market"
	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

func testConf() *config.SandboxBinConfig {
	return &config.SandboxBinConfig{
		ReportLatency: 3 * time.Second,
		PageSize:      20,
		Seed:          1,
		OfferCount:    16,
		OrderCount:    24,
	}
}

func Test_NewStore(t *testing.T) {
	t.Parallel()

	store := NewStore(testConf())

	t.Run("seeding is deterministic", func(t *testing.T) {
		t.Parallel()

		again := NewStore(testConf())
		assert.Equal(t, store.offers, again.offers)
		assert.Equal(t, store.orders, again.orders)
		assert.Equal(t, store.stocks, again.stocks)
	})

	t.Run("catalog has an unpriced mix", func(t *testing.T) {
		t.Parallel()

		var unpriced int
		for _, mapping := range store.offers {
			if mapping.Offer.BasicPrice == nil {
				unpriced++
			}
		}

		assert.Len(t, store.offers, 16)
		assert.Equal(t, 2, unpriced)
	})

	t.Run("orders cover every payment method", func(t *testing.T) {
		t.Parallel()

		methods := make(map[model.PaymentMethod]struct{})
		for _, campaignID := range []int64{seedMainCampaign, seedExpresCampaign} {
			for _, order := range store.orders[campaignID] {
				methods[order.PaymentMethod] = struct{}{}
			}
		}

		assert.Len(t, methods, len(seedPaymentMethods))
	})

	t.Run("both campaigns have a warehouse", func(t *testing.T) {
		t.Parallel()

		require.Len(t, store.stocks[seedMainCampaign], 1)
		require.Len(t, store.stocks[seedExpresCampaign], 1)
		assert.NotEmpty(t, store.stocks[seedMainCampaign][0].Offers)
	})
}

func Test_pageBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		token     string
		limit     int
		total     int
		wantStart int
		wantEnd   int
		wantNext  string
		wantError error
	}{
		{
			name:  "first page",
			token: "", limit: 5, total: 12,
			wantStart: 0, wantEnd: 5, wantNext: "5",
		},
		{
			name:  "middle page",
			token: "5", limit: 5, total: 12,
			wantStart: 5, wantEnd: 10, wantNext: "10",
		},
		{
			name:  "short last page",
			token: "10", limit: 5, total: 12,
			wantStart: 10, wantEnd: 12, wantNext: "",
		},
		{
			name:  "page ending exactly at total",
			token: "5", limit: 7, total: 12,
			wantStart: 5, wantEnd: 12, wantNext: "",
		},
		{
			name:  "token beyond total",
			token: "20", limit: 5, total: 12,
			wantStart: 12, wantEnd: 12, wantNext: "",
		},
		{
			name:  "malformed token",
			token: "abc", limit: 5, total: 12,
			wantError: ErrInvalidParams,
		},
		{
			name:  "negative token",
			token: "-1", limit: 5, total: 12,
			wantError: ErrInvalidParams,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			start, end, next, err := pageBounds(test.token, test.limit, test.total)
			if test.wantError != nil {
				assert.ErrorIs(t, err, test.wantError)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.wantStart, start)
			assert.Equal(t, test.wantEnd, end)
			assert.Equal(t, test.wantNext, next)
		})
	}
}

func Test_Store_SetOrderStatus(t *testing.T) {
	t.Parallel()

	store := NewStore(testConf())

	var processing, cancelled int64
	for _, order := range store.orders[seedMainCampaign] {
		switch order.Status {
		case model.OrderStatusProcessing:
			if processing == 0 {
				processing = order.ID
			}
		case model.OrderStatusCancelled:
			if cancelled == 0 {
				cancelled = order.ID
			}
		}
	}

	require.NotZero(t, processing)
	require.NotZero(t, cancelled)

	order, err := store.SetOrderStatus(seedMainCampaign, processing, model.OrderStatusDelivery, "SHIPPED")
	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivery, order.Status)
	assert.Equal(t, "SHIPPED", order.Substatus)
	assert.NotEmpty(t, order.UpdatedAt)

	_, err = store.SetOrderStatus(seedMainCampaign, cancelled, model.OrderStatusDelivery, "")
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = store.SetOrderStatus(seedMainCampaign, 999999, model.OrderStatusDelivery, "")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = store.SetOrderStatus(777, processing, model.OrderStatusDelivery, "")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func Test_Store_SetStocks(t *testing.T) {
	t.Parallel()

	store := NewStore(testConf())

	// SB-0003 is seeded without a stock record, the update creates one
	err := store.SetStocks(seedMainCampaign, []market.StockUpdate{
		{SKU: "SB-0003", Items: []market.StockItem{{Count: 42}}},
	})
	assert.NoError(t, err)

	warehouses, next, err := store.WarehouseStocks(seedMainCampaign, "", 10)
	assert.NoError(t, err)
	assert.Empty(t, next)
	require.Len(t, warehouses, 1)

	var found bool
	for _, offer := range warehouses[0].Offers {
		if offer.OfferID == "SB-0003" {
			found = true

			assert.Equal(t, int64(42), offer.Count(model.StockTypeAvailable))
		}
	}
	assert.True(t, found)

	err = store.SetStocks(seedMainCampaign, []market.StockUpdate{
		{SKU: "SB-0001", WarehouseID: 999, Items: []market.StockItem{{Count: 1}}},
	})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	err = store.SetStocks(seedMainCampaign, []market.StockUpdate{
		{Items: []market.StockItem{{Count: 1}}},
	})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func Test_Store_Reports(t *testing.T) {
	t.Parallel()

	store := NewStore(testConf())

	current := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	reportID := store.CreateReport(model.ReportPrices, model.ReportFormatCSV)
	require.NotEmpty(t, reportID)

	info, ok := store.Report(reportID)
	require.True(t, ok)
	assert.Equal(t, model.ReportStatusPending, info.Status)
	assert.NotZero(t, info.EstimatedGenerationTime)
	assert.Empty(t, info.GenerationFinishedAt)

	current = current.Add(4 * time.Second)

	info, ok = store.Report(reportID)
	require.True(t, ok)
	assert.Equal(t, model.ReportStatusDone, info.Status)
	assert.NotEmpty(t, info.GenerationFinishedAt)

	data, ok := store.ReportCSV(reportID)
	require.True(t, ok)
	assert.Contains(t, string(data), "sku,name,price,currency")

	_, ok = store.Report("missing")
	assert.False(t, ok)
}
