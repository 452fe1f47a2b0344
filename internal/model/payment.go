package model

// PaymentType is the vendor's coarse prepaid/postpaid tag carried next to
// the payment method on every order.
type PaymentType string

const (
	PaymentTypePrepaid  PaymentType = "PREPAID"
	PaymentTypePostpaid PaymentType = "POSTPAID"
)

// PaymentMethod tags how an order was or will be paid. It is descriptive
// metadata only: order records carry whatever string the vendor returns, and
// unrecognized values survive a read/write round trip untouched.
type PaymentMethod string

const (
	PaymentCashOnDelivery        PaymentMethod = "CASH_ON_DELIVERY"
	PaymentCardOnDelivery        PaymentMethod = "CARD_ON_DELIVERY"
	PaymentBoundCardOnDelivery   PaymentMethod = "BOUND_CARD_ON_DELIVERY"
	PaymentCredit                PaymentMethod = "CREDIT"
	PaymentTinkoffCredit         PaymentMethod = "TINKOFF_CREDIT"
	PaymentTinkoffInstallments   PaymentMethod = "TINKOFF_INSTALLMENTS"
	PaymentYandex                PaymentMethod = "YANDEX"
	PaymentApplePay              PaymentMethod = "APPLE_PAY"
	PaymentGooglePay             PaymentMethod = "GOOGLE_PAY"
	PaymentSBP                   PaymentMethod = "SBP"
	PaymentB2BAccountPrepayment  PaymentMethod = "B2B_ACCOUNT_PREPAYMENT"
	PaymentB2BAccountPostpayment PaymentMethod = "B2B_ACCOUNT_POSTPAYMENT"

	// PaymentUnknown is the default for values outside the known set.
	PaymentUnknown PaymentMethod = "UNKNOWN"
)

var paymentDescriptions = map[PaymentMethod]string{
	PaymentCashOnDelivery:        "cash on delivery",
	PaymentCardOnDelivery:        "card on delivery",
	PaymentBoundCardOnDelivery:   "saved card on delivery",
	PaymentCredit:                "credit",
	PaymentTinkoffCredit:         "bank credit",
	PaymentTinkoffInstallments:   "bank installments",
	PaymentYandex:                "yandex pay",
	PaymentApplePay:              "apple pay",
	PaymentGooglePay:             "google pay",
	PaymentSBP:                   "faster payments system",
	PaymentB2BAccountPrepayment:  "b2b account prepayment",
	PaymentB2BAccountPostpayment: "b2b account postpayment",
	PaymentUnknown:               "unknown",
}

// ParsePaymentMethod maps a raw vendor value onto the known set, defaulting
// to PaymentUnknown.
func ParsePaymentMethod(raw string) PaymentMethod {
	method := PaymentMethod(raw)
	if _, ok := paymentDescriptions[method]; !ok {
		return PaymentUnknown
	}

	return method
}

func (method PaymentMethod) Known() bool {
	_, ok := paymentDescriptions[method]

	return ok && method != PaymentUnknown
}

func (method PaymentMethod) Description() string {
	if desc, ok := paymentDescriptions[method]; ok {
		return desc
	}

	return paymentDescriptions[PaymentUnknown]
}

// OnDelivery reports whether the buyer settles with the courier at handoff.
func (method PaymentMethod) OnDelivery() bool {
	switch method {
	case PaymentCashOnDelivery, PaymentCardOnDelivery, PaymentBoundCardOnDelivery:
		return true
	default:
		return false
	}
}
