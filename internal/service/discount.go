package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/janatafootwear/storefront/internal/models"
	"github.com/janatafootwear/storefront/internal/repo"
)

const (
	MinDiscount = 5
	MaxDiscount = 30
	MaxAttempts = 3
)

// DiscountPhase is the observable state of the per-product discount
// game.
type DiscountPhase string

const (
	PhaseNoAttempt DiscountPhase = "no_attempt"
	PhaseOffered   DiscountPhase = "offered"
	PhaseAccepted  DiscountPhase = "accepted"
)

// DiscountState is what callers get from GetState and Spin. CanSpin is
// the capability flag the UI uses to disable the action instead of
// triggering rejections.
type DiscountState struct {
	ProductID         uuid.UUID     `json:"product_id"`
	Phase             DiscountPhase `json:"phase"`
	Discount          *int          `json:"discount,omitempty"`
	AttemptsUsed      int           `json:"attempts_used"`
	AttemptsRemaining int           `json:"attempts_remaining"`
	CanSpin           bool          `json:"can_spin"`
}

// DiscountService runs the spin-to-win discount game: up to three
// uniform draws from [MinDiscount, MaxDiscount] per product, accept
// locks the offer until the product leaves the cart.
type DiscountService struct {
	Repo *repo.GormRepo

	// IntN returns a uniform int in [0, n); defaults to math/rand/v2.
	// Tests inject a deterministic draw here.
	IntN func(n int) int
}

func (s *DiscountService) draw() int {
	intn := s.IntN
	if intn == nil {
		intn = rand.IntN
	}
	return MinDiscount + intn(MaxDiscount-MinDiscount+1)
}

func stateOf(productID uuid.UUID, d *models.ProductDiscount) DiscountState {
	st := DiscountState{
		ProductID:         productID,
		Phase:             PhaseNoAttempt,
		AttemptsRemaining: MaxAttempts,
		CanSpin:           true,
	}
	if d == nil {
		return st
	}

	st.AttemptsUsed = d.AttemptsUsed
	st.AttemptsRemaining = MaxAttempts - d.AttemptsUsed
	discount := d.Discount
	st.Discount = &discount

	// The last offer stays live after the final spin; only accepting
	// closes it. Exhaustion shows up as offered with no spins left.
	if d.Accepted {
		st.Phase = PhaseAccepted
		st.CanSpin = false
	} else {
		st.Phase = PhaseOffered
		st.CanSpin = d.AttemptsUsed < MaxAttempts
	}
	return st
}

func (s *DiscountService) GetState(ctx context.Context, userID, productID uuid.UUID) (DiscountState, error) {
	d, err := s.Repo.GetDiscount(ctx, userID, productID)
	if err != nil {
		return DiscountState{}, err
	}
	return stateOf(productID, d), nil
}

// Spin draws a new discount for the product and burns one attempt. It
// fails with ErrSpinUnavailable once the offer was accepted or all
// attempts are used, and with ErrNotFound for an unknown product.
func (s *DiscountService) Spin(ctx context.Context, userID, productID uuid.UUID) (DiscountState, error) {
	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		return DiscountState{}, fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}

	d, err := s.Repo.GetDiscount(ctx, userID, productID)
	if err != nil {
		return DiscountState{}, err
	}

	if d != nil && (d.Accepted || d.AttemptsUsed >= MaxAttempts) {
		return stateOf(productID, d), ErrSpinUnavailable
	}

	if d == nil {
		d = &models.ProductDiscount{UserID: userID, ProductID: productID}
	}
	d.Discount = s.draw()
	d.AttemptsUsed++

	if err := s.Repo.SaveDiscount(ctx, d); err != nil {
		return DiscountState{}, err
	}
	return stateOf(productID, d), nil
}

// Accept freezes the currently offered discount. The caller names the
// value it is accepting; a mismatch with the actual offer is a
// validation error, which keeps fabricated discounts out of the cart.
func (s *DiscountService) Accept(ctx context.Context, userID, productID uuid.UUID, discount int) (DiscountState, error) {
	d, err := s.Repo.GetDiscount(ctx, userID, productID)
	if err != nil {
		return DiscountState{}, err
	}
	if d == nil {
		return stateOf(productID, nil), fmt.Errorf("nothing offered for product %s: %w", productID, ErrConflict)
	}
	if d.Accepted {
		return stateOf(productID, d), fmt.Errorf("discount already accepted: %w", ErrConflict)
	}
	if d.Discount != discount {
		return stateOf(productID, d), fmt.Errorf("discount %d is not the current offer: %w", discount, ErrValidation)
	}

	d.Accepted = true
	if err := s.Repo.SaveDiscount(ctx, d); err != nil {
		return DiscountState{}, err
	}
	return stateOf(productID, d), nil
}

// AcceptedDiscount returns the locked-in percent for a product, or nil
// when none is accepted. The Cart Ledger uses this as the only source
// of discounts for new lines.
func (s *DiscountService) AcceptedDiscount(ctx context.Context, userID, productID uuid.UUID) (*int, error) {
	d, err := s.Repo.GetDiscount(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if d == nil || !d.Accepted {
		return nil, nil
	}
	discount := d.Discount
	return &discount, nil
}

// Reset clears the game state for a product. The Cart Ledger calls this
// when the last cart line referencing the product is removed.
func (s *DiscountService) Reset(ctx context.Context, userID, productID uuid.UUID) error {
	return s.Repo.ResetDiscount(ctx, userID, productID)
}
