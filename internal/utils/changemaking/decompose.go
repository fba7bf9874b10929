package changemaking

import (
	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
)

// Decompose greedily breaks amount into the given denominations, which must be
// sorted by descending value (see DenominationSet.Active). Whatever cannot be
// represented is returned as the breakdown's Leftover.
//
// Greedy is optimal for the Canadian catalog, which is a canonical coin system.
func Decompose(amount int64, active []domain.Denomination) domain.Breakdown {
	breakdown := domain.Breakdown{Lines: []domain.BreakdownLine{}}
	remaining := amount
	for _, d := range active {
		if d.Value <= 0 || remaining <= 0 {
			continue
		}
		count := remaining / d.Value
		if count > 0 {
			breakdown.Lines = append(breakdown.Lines, domain.BreakdownLine{
				Name:  d.Name,
				Value: d.Value,
				Count: count,
			})
			remaining -= count * d.Value
		}
	}
	breakdown.Leftover = remaining
	return breakdown
}

// pieces is the piece count of the greedy decomposition.
func pieces(amount int64, active []domain.Denomination) int64 {
	return Decompose(amount, active).Pieces()
}
