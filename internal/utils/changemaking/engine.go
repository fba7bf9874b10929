package changemaking

import (
	"github.com/ahmedhedefa/cashier-ca-web/internal/apperrors"
	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Engine turns a due/paid pair into rounded change, its breakdown and top-up
// suggestions. It holds no mutable state and is safe for concurrent use.
//
// Rounding is applied to the computed change (paid - due), never to the due
// amount on its own. The sufficiency check compares the unrounded amounts.
type Engine struct {
	policy  domain.RoundingPolicy
	advisor *Advisor
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithRoundingPolicy overrides the nickel rounding policy.
func WithRoundingPolicy(p domain.RoundingPolicy) EngineOption {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithAdvisor overrides the top-up advisor.
func WithAdvisor(a *Advisor) EngineOption {
	return func(e *Engine) {
		e.advisor = a
	}
}

// NewEngine creates an Engine using nickel rounding by default.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{policy: domain.NickelRounding}
	for _, opt := range opts {
		opt(e)
	}
	if e.advisor == nil {
		e.advisor = NewAdvisor(e.policy)
	}
	return e
}

// Policy returns the rounding policy in effect.
func (e *Engine) Policy() domain.RoundingPolicy {
	return e.policy
}

// Compute converts both amounts to cents and returns the change result, or
// apperrors.ErrInsufficientPayment when paid is below due. Amounts above
// domain.MaxAmountCents return apperrors.ErrValidation.
func (e *Engine) Compute(due, paid decimal.Decimal, set domain.DenominationSet) (*domain.ChangeResult, error) {
	dueCents, err := domain.ToMinorUnits(due)
	if err != nil {
		return nil, err
	}
	paidCents, err := domain.ToMinorUnits(paid)
	if err != nil {
		return nil, err
	}
	return e.ComputeCents(dueCents, paidCents, set)
}

// ComputeCents is Compute for amounts already in cents.
func (e *Engine) ComputeCents(dueCents, paidCents int64, set domain.DenominationSet) (*domain.ChangeResult, error) {
	if err := domain.CheckMinorUnits(dueCents); err != nil {
		return nil, err
	}
	if err := domain.CheckMinorUnits(paidCents); err != nil {
		return nil, err
	}
	if paidCents < dueCents {
		return nil, apperrors.ErrInsufficientPayment
	}

	active := set.Active()
	raw := paidCents - dueCents
	change := e.policy.Round(raw)
	breakdown := Decompose(change, active)

	suggestions := []int64{}
	if breakdown.Pieces() > 1 {
		suggestions = e.advisor.Suggest(raw, active)
	}

	return &domain.ChangeResult{
		Due:         dueCents,
		Paid:        paidCents,
		RawChange:   raw,
		Change:      change,
		Breakdown:   breakdown,
		Suggestions: suggestions,
	}, nil
}
