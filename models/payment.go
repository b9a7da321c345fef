package models

import "time"

// PaymentStatus is the gateway-side state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Terminal reports whether no further status change can occur.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentCompleted || s == PaymentFailed
}

// PaymentRequest is the payload for initiating a payment on a booking.
type PaymentRequest struct {
	Amount    float64 `json:"amount"`
	VendorID  string  `json:"vendorId"`
	BookingID string  `json:"bookingId"`
	UserID    string  `json:"userId"`
}

// Payment is a payment record tied to a booking.
type Payment struct {
	ID        string        `json:"id"`
	BookingID string        `json:"bookingId"`
	VendorID  string        `json:"vendorId"`
	UserID    string        `json:"userId"`
	Amount    float64       `json:"amount"`
	Status    PaymentStatus `json:"status"`
	TxRef     string        `json:"txRef"`
	CreatedAt time.Time     `json:"createdAt,omitempty"`
	UpdatedAt time.Time     `json:"updatedAt,omitempty"`
}

// CheckoutSession is the payment-initiation response. CheckoutURL is the
// external gateway page the user is redirected to.
type CheckoutSession struct {
	CheckoutURL string  `json:"checkoutUrl"`
	Payment     Payment `json:"payment"`
}
