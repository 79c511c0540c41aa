package models

// PaymentMethod identifies how the shopper pays at checkout.
type PaymentMethod string

const (
	MethodCreditCard     PaymentMethod = "credit-card"
	MethodPayPal         PaymentMethod = "paypal"
	MethodEsewa          PaymentMethod = "esewa"
	MethodCashOnDelivery PaymentMethod = "cash-on-delivery"
)

// IsValidPaymentMethod reports whether m is a supported method.
func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodCreditCard, MethodPayPal, MethodEsewa, MethodCashOnDelivery:
		return true
	}
	return false
}

// Per-method credential forms. The gateways are simulated and accept any
// values, but the records are typed and required-checked at the boundary so
// an empty submission never reaches the simulator.

type CardDetails struct {
	CardName   string `json:"cardName" binding:"required"`
	CardNumber string `json:"cardNumber" binding:"required"`
	CardExpiry string `json:"cardExpiry" binding:"required"`
	CardCvc    string `json:"cardCvc" binding:"required"`
}

type PayPalCredentials struct {
	Email    string `json:"paypalEmail" binding:"required,email"`
	Password string `json:"paypalPassword" binding:"required"`
}

type EsewaCredentials struct {
	EsewaID  string `json:"esewaId" binding:"required"`
	Password string `json:"esewaPassword" binding:"required"`
}
