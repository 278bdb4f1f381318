package model

import (
	"github.com/axoxia/shipping-quote/internal/pricing"
)

const (
	CategoryMail      = "Mail"
	CategoryParcel    = "Parcel"
	CategoryContainer = "Container"
)

type Dimensions struct {
	LengthCm float64 `json:"length"`
	WidthCm  float64 `json:"width"`
	HeightCm float64 `json:"height"`
}

type Party struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Contact   string `json:"contact"`
	Email     string `json:"email"`
	Country   string `json:"country"`
}

func (p Party) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Shipment is everything the booking form collects. Only WeightKg and
// Insurance reach the price; the rest is carried for receipts.
type Shipment struct {
	Category   string     `json:"category"`
	Details    string     `json:"details"`
	Country    string     `json:"country"`
	WeightKg   float64    `json:"weight_kg"`
	Dimensions Dimensions `json:"dimensions"`
	Sender     Party      `json:"sender"`
	Recipient  Party      `json:"recipient"`
	Insurance  bool       `json:"insurance"`
	Message    string     `json:"message"`
}

func (s Shipment) PricingRequest() pricing.ShipmentRequest {
	return pricing.ShipmentRequest{
		WeightKg:           s.WeightKg,
		InsuranceRequested: s.Insurance,
	}
}
