package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParsePaymentMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want PaymentMethod
	}{
		{
			name: "known method",
			raw:  "CASH_ON_DELIVERY",
			want: PaymentCashOnDelivery,
		},
		{
			name: "digital wallet",
			raw:  "APPLE_PAY",
			want: PaymentApplePay,
		},
		{
			name: "b2b billing",
			raw:  "B2B_ACCOUNT_POSTPAYMENT",
			want: PaymentB2BAccountPostpayment,
		},
		{
			name: "unrecognized value defaults to unknown",
			raw:  "SOME_NEW_METHOD",
			want: PaymentUnknown,
		},
		{
			name: "empty value defaults to unknown",
			raw:  "",
			want: PaymentUnknown,
		},
		{
			name: "case sensitive",
			raw:  "yandex",
			want: PaymentUnknown,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, ParsePaymentMethod(test.raw))
		})
	}
}

func TestPaymentMethod_Known(t *testing.T) {
	t.Parallel()

	assert.True(t, PaymentSBP.Known())
	assert.False(t, PaymentUnknown.Known())
	assert.False(t, PaymentMethod("SOME_NEW_METHOD").Known())
}

func TestPaymentMethod_Description(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cash on delivery", PaymentCashOnDelivery.Description())
	assert.Equal(t, "unknown", PaymentMethod("SOME_NEW_METHOD").Description())
}

func TestPaymentMethod_OnDelivery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method PaymentMethod
		want   bool
	}{
		{name: "cash on delivery", method: PaymentCashOnDelivery, want: true},
		{name: "card on delivery", method: PaymentCardOnDelivery, want: true},
		{name: "bound card on delivery", method: PaymentBoundCardOnDelivery, want: true},
		{name: "prepaid wallet", method: PaymentYandex, want: false},
		{name: "unknown", method: PaymentUnknown, want: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, test.method.OnDelivery())
		})
	}
}

func TestPaymentMethod_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "known method survives",
			raw:  `{"id":1,"paymentType":"POSTPAID","paymentMethod":"CARD_ON_DELIVERY"}`,
		},
		{
			name: "unrecognized method survives untouched",
			raw:  `{"id":1,"paymentType":"PREPAID","paymentMethod":"SOME_NEW_METHOD"}`,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var order Order
			require.NoError(t, json.Unmarshal([]byte(test.raw), &order))

			result, err := json.Marshal(order)
			require.NoError(t, err)
			assert.JSONEq(t, test.raw, string(result))
		})
	}
}
