package dto

import "github.com/axoxia/shipping-quote/internal/model"

// QuoteRequest prices a shipment form. A missing weight means 0.
type QuoteRequest struct {
	Currency string         `json:"currency" binding:"required"`
	Shipment model.Shipment `json:"shipment"`
}

type MatrixRequest struct {
	WeightKg  float64 `json:"weight_kg"`
	Insurance bool    `json:"insurance"`
}

type ConvertRequest struct {
	Amount float64 `json:"amount" binding:"gte=0"`
	From   string  `json:"from" binding:"required"`
	To     string  `json:"to" binding:"required"`
}

// CheckoutRequest uses the same JSON shape as QuoteRequest with the
// stricter rules a booking needs.
type CheckoutRequest struct {
	Currency string           `json:"currency" binding:"required"`
	Shipment CheckoutShipment `json:"shipment"`
}

type CheckoutShipment struct {
	Category   string           `json:"category" binding:"required,oneof=Mail Parcel Container"`
	Details    string           `json:"details"`
	Country    string           `json:"country"`
	WeightKg   float64          `json:"weight_kg" binding:"gt=0"`
	Dimensions model.Dimensions `json:"dimensions"`
	Sender     CheckoutSender   `json:"sender"`
	Recipient  model.Party      `json:"recipient"`
	Insurance  bool             `json:"insurance"`
	Message    string           `json:"message"`
}

// CheckoutSender receives the receipt, so the address must be a bare email.
type CheckoutSender struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Contact   string `json:"contact"`
	Email     string `json:"email" binding:"required,email"`
	Country   string `json:"country"`
}

func (s CheckoutShipment) ToModel() model.Shipment {
	return model.Shipment{
		Category:   s.Category,
		Details:    s.Details,
		Country:    s.Country,
		WeightKg:   s.WeightKg,
		Dimensions: s.Dimensions,
		Sender: model.Party{
			FirstName: s.Sender.FirstName,
			LastName:  s.Sender.LastName,
			Address:   s.Sender.Address,
			Contact:   s.Sender.Contact,
			Email:     s.Sender.Email,
			Country:   s.Sender.Country,
		},
		Recipient: s.Recipient,
		Insurance: s.Insurance,
		Message:   s.Message,
	}
}
