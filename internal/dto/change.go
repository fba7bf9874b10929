package dto

import (
	"fmt"

	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	"github.com/ahmedhedefa/cashier-ca-web/internal/utils"
)

// ComputeChangeRequest carries the two amounts typed by the cashier.
// Amounts are decimal strings or numbers; anything unparsable counts as zero.
type ComputeChangeRequest struct {
	Due     AmountInput     `json:"due" binding:"max=32" swaggertype:"string" example:"4.03"`
	Paid    AmountInput     `json:"paid" binding:"max=32" swaggertype:"string" example:"5.00"`
	Enabled map[string]bool `json:"enabled" binding:"omitempty,dive,keys,denomination,endkeys"` // Optional per-request toggles
	TillID  string          `json:"tillID" binding:"omitempty,uuid"`                            // Optional till profile to start from
}

// BreakdownLineResponse is one row of the change table.
type BreakdownLineResponse struct {
	Name         string `json:"name"`
	Value        int64  `json:"value"`
	ValueDisplay string `json:"valueDisplay"`
	Quantity     int64  `json:"quantity"`
}

// SuggestionResponse is a top-up hint for the cashier.
type SuggestionResponse struct {
	Extra        int64  `json:"extra"`
	ExtraDisplay string `json:"extraDisplay"`
	Message      string `json:"message"`
}

// ChangeResponse defines the data returned for a change computation.
// All integer amounts are cents.
type ChangeResponse struct {
	Due           int64                   `json:"due"`
	Paid          int64                   `json:"paid"`
	RawChange     int64                   `json:"rawChange"`
	Change        int64                   `json:"change"`
	ChangeDisplay string                  `json:"changeDisplay"`
	Breakdown     []BreakdownLineResponse `json:"breakdown"`
	Leftover      int64                   `json:"leftover"`
	Pieces        int64                   `json:"pieces"`
	Suggestions   []SuggestionResponse    `json:"suggestions"`
}

// ToChangeResponse converts a domain.ChangeResult to a ChangeResponse DTO
func ToChangeResponse(r *domain.ChangeResult) ChangeResponse {
	lines := make([]BreakdownLineResponse, len(r.Breakdown.Lines))
	for i, l := range r.Breakdown.Lines {
		lines[i] = BreakdownLineResponse{
			Name:         l.Name,
			Value:        l.Value,
			ValueDisplay: utils.FormatCents(l.Value),
			Quantity:     l.Count,
		}
	}

	suggestions := make([]SuggestionResponse, len(r.Suggestions))
	for i, extra := range r.Suggestions {
		display := utils.FormatCents(extra)
		suggestions[i] = SuggestionResponse{
			Extra:        extra,
			ExtraDisplay: display,
			Message:      fmt.Sprintf("Ask for %s more → fewer pieces.", display),
		}
	}

	return ChangeResponse{
		Due:           r.Due,
		Paid:          r.Paid,
		RawChange:     r.RawChange,
		Change:        r.Change,
		ChangeDisplay: utils.FormatCents(r.Change),
		Breakdown:     lines,
		Leftover:      r.Breakdown.Leftover,
		Pieces:        r.Breakdown.Pieces(),
		Suggestions:   suggestions,
	}
}
