package promo

import (
	"context"

	promoRepo "wanderbook/database/repository/promo"
	"wanderbook/models"
)

// ErrNotFound signals that the code is unknown, inactive, or expired. The
// standalone validation endpoint maps it to a 404; the booking path treats
// it as zero discount.
var ErrNotFound = promoRepo.ErrNotFound

// Evaluator resolves a promo code against a subtotal.
type Evaluator interface {
	Evaluate(ctx context.Context, code string, unitPrice float64, quantity int) (*models.PromoResult, error)
}

// DefaultEvaluator implements Evaluator.
type DefaultEvaluator struct {
	Repo promoRepo.PromoRepository
}

// Evaluate looks up the code and computes the discount for the given unit
// price and quantity. Percentage codes take value% of the subtotal; flat
// codes take their value outright. The discount never exceeds the subtotal
// and never goes negative. Pure read, safe to call repeatedly.
func (e *DefaultEvaluator) Evaluate(ctx context.Context, code string, unitPrice float64, quantity int) (*models.PromoResult, error) {
	promoCode, err := e.Repo.FindActiveByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	subtotal := unitPrice * float64(quantity)

	var discount float64
	switch promoCode.Type {
	case models.PromoTypePercentage:
		discount = subtotal * promoCode.Value / 100
	case models.PromoTypeFlat:
		discount = promoCode.Value
	}

	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}

	return &models.PromoResult{
		Code:     promoCode.Code,
		Type:     promoCode.Type,
		Value:    promoCode.Value,
		Discount: discount,
	}, nil
}
