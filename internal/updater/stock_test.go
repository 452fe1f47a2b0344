package updater

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mihalio25/yandex-market-partner-api/internal/market"
	mockmarket "github.com/mihalio25/yandex-market-partner-api/internal/mock/market"
	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

func TestStockUpdater_Run(t *testing.T) {
	t.Parallel()

	errSend := errors.New("send failed")

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := "2024-05-01T12:00:00Z"

	warehouses := []model.WarehouseStocks{
		{
			WarehouseID: 5,
			Offers: []model.OfferStocks{
				{
					OfferID: "SKU-X",
					Stocks: []model.StockCount{
						{Type: model.StockTypeAvailable, Count: 10},
						{Type: model.StockTypeDefect, Count: 2},
					},
				},
				{
					OfferID: "SKU-Y",
					Stocks:  []model.StockCount{{Type: model.StockTypeAvailable, Count: 2}},
				},
				{
					OfferID: "SKU-Z",
					Stocks:  []model.StockCount{{Type: model.StockTypeAvailable, Count: 9}},
				},
				{
					OfferID: "SKU-W",
					Stocks:  []model.StockCount{{Type: model.StockTypeAvailable, Count: 0}},
				},
			},
		},
	}

	tests := []struct {
		name        string
		conf        Config
		adjust      int64
		filters     Filters
		getAPI      func(ctrl *gomock.Controller) market.API
		wantStats   *Stats
		wantChanges []StockChange
		wantError   error
	}{
		{
			name:    "happy flow",
			conf:    Config{BatchSize: 2},
			adjust:  -3,
			filters: Filters{ExcludeSKUs: []string{"SKU-Z"}},
			getAPI: func(ctrl *gomock.Controller) market.API {
				api := mockmarket.NewMockAPI(ctrl)
				api.EXPECT().
					WarehouseStocks(gomock.Any(), int64(42), market.StocksParams{Limit: 200}).
					Return(&market.WarehouseStocksResponse{Warehouses: warehouses}, nil)
				api.EXPECT().
					UpdateStocks(gomock.Any(), int64(42), []market.StockUpdate{
						{
							SKU:         "SKU-X",
							WarehouseID: 5,
							Items:       []market.StockItem{{Count: 7, UpdatedAt: updatedAt}},
						},
						{
							SKU:         "SKU-Y",
							WarehouseID: 5,
							Items:       []market.StockItem{{Count: 0, UpdatedAt: updatedAt}},
						},
					}).
					Return(nil)

				return api
			},
			wantStats: &Stats{Total: 4, Updated: 2, Skipped: 2},
			wantChanges: []StockChange{
				{SKU: "SKU-W", WarehouseID: 5, OldCount: 0, NewCount: 0, Status: ChangeSkipped},
				{SKU: "SKU-X", WarehouseID: 5, OldCount: 10, NewCount: 7, Status: ChangeUpdated},
				{SKU: "SKU-Y", WarehouseID: 5, OldCount: 2, NewCount: 0, Status: ChangeUpdated},
			},
			wantError: nil,
		},
		{
			name:   "dry run sends nothing",
			conf:   Config{BatchSize: 2, DryRun: true},
			adjust: 5,
			getAPI: func(ctrl *gomock.Controller) market.API {
				api := mockmarket.NewMockAPI(ctrl)
				api.EXPECT().
					WarehouseStocks(gomock.Any(), int64(42), market.StocksParams{Limit: 200}).
					Return(&market.WarehouseStocksResponse{
						Warehouses: []model.WarehouseStocks{
							{
								WarehouseID: 5,
								Offers: []model.OfferStocks{
									{
										OfferID: "SKU-X",
										Stocks:  []model.StockCount{{Type: model.StockTypeAvailable, Count: 10}},
									},
								},
							},
						},
					}, nil)

				return api
			},
			wantStats: &Stats{Total: 1, Updated: 1},
			wantChanges: []StockChange{
				{SKU: "SKU-X", WarehouseID: 5, OldCount: 10, NewCount: 15, Status: ChangePlanned},
			},
			wantError: nil,
		},
		{
			name:   "failed batch recorded",
			conf:   Config{BatchSize: 10},
			adjust: 1,
			getAPI: func(ctrl *gomock.Controller) market.API {
				api := mockmarket.NewMockAPI(ctrl)
				api.EXPECT().
					WarehouseStocks(gomock.Any(), int64(42), market.StocksParams{Limit: 200}).
					Return(&market.WarehouseStocksResponse{
						Warehouses: []model.WarehouseStocks{
							{
								WarehouseID: 5,
								Offers: []model.OfferStocks{
									{
										OfferID: "SKU-X",
										Stocks:  []model.StockCount{{Type: model.StockTypeAvailable, Count: 10}},
									},
								},
							},
						},
					}, nil)
				api.EXPECT().UpdateStocks(gomock.Any(), int64(42), gomock.Any()).Return(errSend)

				return api
			},
			wantStats: &Stats{Total: 1, Errors: 1},
			wantChanges: []StockChange{
				{SKU: "SKU-X", WarehouseID: 5, OldCount: 10, NewCount: 11, Status: ChangeFailed},
			},
			wantError: nil,
		},
		{
			name:   "stocks fetch fails",
			conf:   Config{BatchSize: 2},
			adjust: 1,
			getAPI: func(ctrl *gomock.Controller) market.API {
				api := mockmarket.NewMockAPI(ctrl)
				api.EXPECT().
					WarehouseStocks(gomock.Any(), int64(42), market.StocksParams{Limit: 200}).
					Return(nil, errSend)

				return api
			},
			wantStats:   nil,
			wantChanges: nil,
			wantError:   errSend,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			updater := NewStockUpdater(test.getAPI(ctrl), test.conf)
			updater.now = func() time.Time { return now }

			stats, changes, err := updater.Run(
				context.Background(), 42, test.adjust, model.StockTypeAvailable, test.filters,
			)

			assert.ErrorIs(t, err, test.wantError)
			assert.Equal(t, test.wantStats, stats)
			assert.Equal(t, test.wantChanges, changes)
		})
	}
}
