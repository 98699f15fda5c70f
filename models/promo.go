package models

import "time"

// Promo code discount types.
const (
	PromoTypePercentage = "percentage"
	PromoTypeFlat       = "flat"
)

// PromoCode is a discount rule managed out of band. Codes are stored
// upper-cased; lookups canonicalize before matching.
type PromoCode struct {
	ID         string    `bson:"id" json:"id"`
	Code       string    `bson:"code" json:"code"`
	Type       string    `bson:"type" json:"type"` // "percentage" or "flat"
	Value      float64   `bson:"value" json:"value"`
	Active     bool      `bson:"active" json:"active"`
	ExpiryDate time.Time `bson:"expiryDate" json:"expiryDate"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PromoResult is the outcome of evaluating a promo code against a subtotal.
type PromoResult struct {
	Code     string  `json:"code"`
	Type     string  `json:"type"`
	Value    float64 `json:"value"`
	Discount float64 `json:"discount"`
}
