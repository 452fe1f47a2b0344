package model

import (
	"errors"
	"fmt"
	"strings"
)

type OrderStatus string

const (
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusDelivery   OrderStatus = "DELIVERY"
	OrderStatusPickup     OrderStatus = "PICKUP"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusUnpaid     OrderStatus = "UNPAID"
)

var ErrUnknownOrderStatus = errors.New("unknown order status")

func ParseOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(raw))
	switch status {
	case OrderStatusCancelled, OrderStatusConfirmed, OrderStatusDelivered,
		OrderStatusDelivery, OrderStatusPickup, OrderStatusProcessing,
		OrderStatusUnpaid:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownOrderStatus, raw)
	}
}

// Order keeps the fields the toolkit reads; the payment tags stay raw
// strings so unrecognized vendor values round-trip unchanged.
type Order struct {
	ID               int64         `json:"id"`
	Status           OrderStatus   `json:"status,omitempty"`
	Substatus        string        `json:"substatus,omitempty"`
	CreationDate     string        `json:"creationDate,omitempty"`
	UpdatedAt        string        `json:"updatedAt,omitempty"`
	Currency         string        `json:"currency,omitempty"`
	ItemsTotal       float64       `json:"itemsTotal,omitempty"`
	BuyerItemsTotal  float64       `json:"buyerItemsTotal,omitempty"`
	TotalWithSubsidy float64       `json:"totalWithSubsidy,omitempty"`
	Fake             bool          `json:"fake,omitempty"`
	PaymentType      PaymentType   `json:"paymentType,omitempty"`
	PaymentMethod    PaymentMethod `json:"paymentMethod,omitempty"`
	Buyer            *Buyer        `json:"buyer,omitempty"`
	Delivery         *Delivery     `json:"delivery,omitempty"`
	Items            []OrderItem   `json:"items,omitempty"`
}

type Buyer struct {
	ID         string `json:"id,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	MiddleName string `json:"middleName,omitempty"`
	Type       string `json:"type,omitempty"`
}

type Delivery struct {
	Type              string  `json:"type,omitempty"`
	ServiceName       string  `json:"serviceName,omitempty"`
	Price             float64 `json:"price,omitempty"`
	DeliveryServiceID int64   `json:"deliveryServiceId,omitempty"`
	Region            *Region `json:"region,omitempty"`
}

type OrderItem struct {
	ID         int64   `json:"id,omitempty"`
	OfferID    string  `json:"offerId"`
	OfferName  string  `json:"offerName,omitempty"`
	Price      float64 `json:"price,omitempty"`
	BuyerPrice float64 `json:"buyerPrice,omitempty"`
	Count      int     `json:"count,omitempty"`
	Subsidy    float64 `json:"subsidy,omitempty"`
}

type Orders []Order

// Total prefers the vendor's itemsTotal and falls back to summing items.
func (order Order) Total() float64 {
	if order.ItemsTotal > 0 {
		return order.ItemsTotal
	}

	var total float64
	for _, item := range order.Items {
		total += item.Price * float64(item.Count)
	}

	return total
}

func (order Order) ItemCount() int {
	var count int
	for _, item := range order.Items {
		count += item.Count
	}

	return count
}

func (orders Orders) GroupByPaymentMethod() map[PaymentMethod]Orders {
	groups := make(map[PaymentMethod]Orders)
	for _, order := range orders {
		method := ParsePaymentMethod(string(order.PaymentMethod))
		groups[method] = append(groups[method], order)
	}

	return groups
}
