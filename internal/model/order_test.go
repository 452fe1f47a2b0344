package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseOrderStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		want      OrderStatus
		wantError error
	}{
		{
			name: "exact value",
			raw:  "PROCESSING",
			want: OrderStatusProcessing,
		},
		{
			name: "lower case value",
			raw:  "delivered",
			want: OrderStatusDelivered,
		},
		{
			name:      "unknown value",
			raw:       "SHIPPED",
			want:      "",
			wantError: ErrUnknownOrderStatus,
		},
		{
			name:      "empty value",
			raw:       "",
			want:      "",
			wantError: ErrUnknownOrderStatus,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			status, err := ParseOrderStatus(test.raw)
			assert.Equal(t, test.want, status)
			assert.ErrorIs(t, err, test.wantError)
		})
	}
}

func TestOrder_Total(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		order Order
		want  float64
	}{
		{
			name:  "items total from vendor",
			order: Order{ItemsTotal: 1500.5},
			want:  1500.5,
		},
		{
			name: "fallback to item sum",
			order: Order{Items: []OrderItem{
				{OfferID: "sku-1", Price: 100, Count: 2},
				{OfferID: "sku-2", Price: 50.5, Count: 1},
			}},
			want: 250.5,
		},
		{
			name:  "empty order",
			order: Order{},
			want:  0,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, test.order.Total())
		})
	}
}

func TestOrder_ItemCount(t *testing.T) {
	t.Parallel()

	order := Order{Items: []OrderItem{
		{OfferID: "sku-1", Count: 2},
		{OfferID: "sku-2", Count: 3},
	}}

	assert.Equal(t, 5, order.ItemCount())
}

func TestOrders_GroupByPaymentMethod(t *testing.T) {
	t.Parallel()

	orders := Orders{
		{ID: 1, PaymentMethod: PaymentYandex},
		{ID: 2, PaymentMethod: PaymentYandex},
		{ID: 3, PaymentMethod: PaymentCashOnDelivery},
		{ID: 4, PaymentMethod: "SOME_NEW_METHOD"},
		{ID: 5},
	}

	groups := orders.GroupByPaymentMethod()

	assert.Len(t, groups, 3)
	assert.Len(t, groups[PaymentYandex], 2)
	assert.Len(t, groups[PaymentCashOnDelivery], 1)
	// unrecognized and absent methods both land in the unknown bucket
	assert.Len(t, groups[PaymentUnknown], 2)
}
