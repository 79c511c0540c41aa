package models

import "time"

// ShippingInfo is the typed shipping form. Every field is required before
// the checkout flow may advance past step 1.
type ShippingInfo struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zipCode" validate:"required"`
	Country   string `json:"country" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
}

// Order is the finalized record written once when checkout completes.
// The core never reads it back; the confirmation view consumes it once.
type Order struct {
	OrderNumber       string        `json:"orderNumber"`
	Items             []CartLine    `json:"items"`
	ShippingInfo      ShippingInfo  `json:"shippingInfo"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	Subtotal          float64       `json:"subtotal"`
	DeliveryFee       float64       `json:"deliveryFee"`
	Tax               float64       `json:"tax"`
	Total             float64       `json:"total"`
	PlacedAt          time.Time     `json:"placedAt"`
	EstimatedDelivery time.Time     `json:"estimatedDelivery"`
}
