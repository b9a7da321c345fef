package models

import "time"

// BookingStatus tracks a booking through its lifecycle. Transitions are
// driven by vendor actions or payment completion.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// BookingInput is the payload for creating a booking. EventDate is sent
// to the backend as ISO-8601.
type BookingInput struct {
	ServiceID          string    `json:"serviceId"`
	ServiceTierPriceID string    `json:"serviceTierPriceId"`
	SelectedTier       Tier      `json:"selectedTier"`
	EventDate          time.Time `json:"eventDate"`
	Location           string    `json:"location"`
	Attendees          int       `json:"attendees"`
	SpecialRequests    string    `json:"specialRequests,omitempty"`
}

// Booking is a confirmed booking record as returned by the backend.
type Booking struct {
	ID                 string        `json:"id"`
	ServiceID          string        `json:"serviceId"`
	VendorID           string        `json:"vendorId"`
	UserID             string        `json:"userId"`
	ServiceTierPriceID string        `json:"serviceTierPriceId"`
	SelectedTier       Tier          `json:"selectedTier"`
	Tier               *ServiceTier  `json:"tier,omitempty"`
	EventDate          time.Time     `json:"eventDate"`
	Location           string        `json:"location"`
	Attendees          int           `json:"attendees"`
	SpecialRequests    string        `json:"specialRequests,omitempty"`
	Amount             float64       `json:"amount"`
	Status             BookingStatus `json:"status"`
	CreatedAt          time.Time     `json:"createdAt"`
}
