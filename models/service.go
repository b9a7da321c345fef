package models

import "time"

// Tier labels a service price tier.
type Tier string

const (
	TierBronze   Tier = "BRONZE"
	TierSilver   Tier = "SILVER"
	TierGold     Tier = "GOLD"
	TierPlatinum Tier = "PLATINUM"
)

// ServiceTier is one priced tier of a service. Tiers are immutable once
// created; vendors edit the service as a whole instead.
type ServiceTier struct {
	ID          string  `json:"id"`
	Tier        Tier    `json:"tier"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// Vendor is the seller profile attached to a service.
type Vendor struct {
	ID           string `json:"id"`
	BusinessName string `json:"businessName"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// Service is a bookable vendor offering.
type Service struct {
	ID          string        `json:"id"`
	VendorID    string        `json:"vendorId"`
	Vendor      Vendor        `json:"vendor,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category,omitempty"`
	BasePrice   float64       `json:"basePrice"`
	Tiers       []ServiceTier `json:"tiers,omitempty"`
	CreatedAt   time.Time     `json:"createdAt,omitempty"`
}

// StartingPrice is the lowest tier price, or the base price when the
// service has no tiers.
func (s *Service) StartingPrice() float64 {
	if len(s.Tiers) == 0 {
		return s.BasePrice
	}
	min := s.Tiers[0].Price
	for _, t := range s.Tiers[1:] {
		if t.Price < min {
			min = t.Price
		}
	}
	return min
}

// TierByID looks up a tier by its id.
func (s *Service) TierByID(id string) (ServiceTier, bool) {
	for _, t := range s.Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return ServiceTier{}, false
}

// PriceForTier returns the price of the given tier, falling back to the
// service base price when the tier is unknown.
func (s *Service) PriceForTier(id string) float64 {
	if t, ok := s.TierByID(id); ok {
		return t.Price
	}
	return s.BasePrice
}
