package models

// ShippingDraft holds the checkout form as the customer fills it in. It is
// persisted on every change, independent of the cart, and is never cleared
// on a failed checkout so the customer can correct and resubmit.
type ShippingDraft struct {
	FullName      string `json:"full_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=7"`
	Country       string `json:"country" validate:"required"`
	Address1      string `json:"address1" validate:"required"`
	Address2      string `json:"address2"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	Zip           string `json:"zip" validate:"required"`
	DeliveryNotes string `json:"delivery_notes"`
}

// DefaultShippingDraft returns the empty draft used when nothing has been
// saved yet, or when the stored blob cannot be read.
func DefaultShippingDraft() ShippingDraft {
	return ShippingDraft{Country: "India"}
}
