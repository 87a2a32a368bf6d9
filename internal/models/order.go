package models

import "time"

// Order statuses move strictly forward; no transition operation is exposed
// here, advancement is a fulfilment concern.
const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusDelivered  = "Delivered"
)

const (
	PaymentMethodCOD = "COD"
	PaymentMethodUPI = "UPI"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodCOD || m == PaymentMethodUPI
}

// Order is an immutable record of a placed order. Items is a deep snapshot of
// the cart at placement time, so later cart or catalog mutations cannot
// retroactively alter it.
type Order struct {
	ID            string     `json:"id"`
	Items         []CartItem `json:"items"`
	Total         float64    `json:"total"`
	Date          time.Time  `json:"date"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"paymentMethod"`
	Address       string     `json:"address,omitempty"`
}
