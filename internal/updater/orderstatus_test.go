package updater

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mihalio25/yandex-market-partner-api/internal/market"
	mockmarket "github.com/mihalio25/yandex-market-partner-api/internal/mock/market"
	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

func TestOrderStatusUpdater_Run(t *testing.T) {
	t.Parallel()

	errSend := errors.New("send failed")

	listParams := func(page int) market.OrderListParams {
		return market.OrderListParams{
			Status:   model.OrderStatusProcessing,
			Page:     page,
			PageSize: 50,
		}
	}

	tests := []struct {
		name        string
		conf        Config
		limit       int
		getAPI      func(ctrl *gomock.Controller) market.API
		wantStats   *Stats
		wantChanges []StatusChange
		wantError   error
	}{
		{
			name: "happy flow",
			conf: Config{BatchSize: 1},
			getAPI: func(ctrl *gomock.Controller) market.API {
				api := mockmarket.NewMockAPI(ctrl)
				api.EXPECT().
					Orders(gomock.Any(), int64(42), listParams(1)).
					Return(&market.OrdersResponse{
						Orders: model.Orders{{ID: 1001}, {ID: 1002}},
						Pager:  &market.Pager{CurrentPage: 1, PagesCount: 2},
					}, nil)
				api.EXPECT().
					Orders(gomock.Any(), int64(42), listParams(2)).
					Return(&market.OrdersResponse{
						Orders: model.Orders{{ID: 1003}},
						Pager:  &market.Pager{CurrentPage: 2, PagesCount: 2},
					}, nil)
				api.EXPECT().
					UpdateOrderStatus(gomock.Any(), int64(42), int64(1001), model.OrderStatusDelivery, "").
					Return(&model.Order{ID: 1001, Status: model.OrderStatusDelivery}, nil)
				api.EXPECT().
					UpdateOrderStatus(gomock.Any(), int64(42), int64(1002), model.OrderStatusDelivery, "").
					Return(nil, errSend)
				api.EXPECT().
					UpdateOrderStatus(gomock.Any(), int64(42), int64(1003), model.OrderStatusDelivery, "").
					Return(&model.Order{ID: 1003, Status: model.OrderStatusDelivery}, nil)

				return api
			},
			wantStats: &Stats{Total: 3, Updated: 2, Errors: 1},
			wantChanges: []StatusChange{
				{OrderID: 1001, From: model.OrderStatusProcessing, To: model.OrderStatusDelivery, Status: ChangeUpdated},
				{OrderID: 1002, From: model.OrderStatusProcessing, To: model.OrderStatusDelivery, Note: "send failed", Status: ChangeFailed},
				{OrderID: 1003, From: model.OrderStatusProcessing, To: model.OrderStatusDelivery, Status: ChangeUpdated},
			},
			wantError: nil,
		},
		{
			name:  "limit stops paging",
			conf:  Config{BatchSize: 1},
			limit: 1,
			getAPI: func(ctrl *gomock.Controller) market.API {
				api := mockmarket.NewMockAPI(ctrl)
				api.EXPECT().
					Orders(gomock.Any(), int64(42), listParams(1)).
					Return(&market.OrdersResponse{
						Orders: model.Orders{{ID: 1001}, {ID: 1002}},
						Pager:  &market.Pager{CurrentPage: 1, PagesCount: 5},
					}, nil)
				api.EXPECT().
					UpdateOrderStatus(gomock.Any(), int64(42), int64(1001), model.OrderStatusDelivery, "").
					Return(&model.Order{ID: 1001, Status: model.OrderStatusDelivery}, nil)

				return api
			},
			wantStats: &Stats{Total: 1, Updated: 1},
			wantChanges: []StatusChange{
				{OrderID: 1001, From: model.OrderStatusProcessing, To: model.OrderStatusDelivery, Status: ChangeUpdated},
			},
			wantError: nil,
		},
		{
			name: "dry run sends nothing",
			conf: Config{BatchSize: 1, DryRun: true},
			getAPI: func(ctrl *gomock.Controller) market.API {
				api := mockmarket.NewMockAPI(ctrl)
				api.EXPECT().
					Orders(gomock.Any(), int64(42), listParams(1)).
					Return(&market.OrdersResponse{
						Orders: model.Orders{{ID: 1001}},
						Pager:  &market.Pager{CurrentPage: 1, PagesCount: 1},
					}, nil)

				return api
			},
			wantStats: &Stats{Total: 1, Updated: 1},
			wantChanges: []StatusChange{
				{OrderID: 1001, From: model.OrderStatusProcessing, To: model.OrderStatusDelivery, Status: ChangePlanned},
			},
			wantError: nil,
		},
		{
			name: "list orders fails",
			conf: Config{BatchSize: 1},
			getAPI: func(ctrl *gomock.Controller) market.API {
				api := mockmarket.NewMockAPI(ctrl)
				api.EXPECT().
					Orders(gomock.Any(), int64(42), listParams(1)).
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

			updater := NewOrderStatusUpdater(test.getAPI(ctrl), test.conf)

			stats, changes, err := updater.Run(
				context.Background(), 42,
				model.OrderStatusProcessing, model.OrderStatusDelivery, "", test.limit,
			)

			assert.ErrorIs(t, err, test.wantError)
			assert.Equal(t, test.wantStats, stats)
			assert.Equal(t, test.wantChanges, changes)
		})
	}
}
