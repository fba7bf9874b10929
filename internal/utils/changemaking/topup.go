package changemaking

import (
	"math"

	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
)

const (
	// DefaultTopUpCeiling is the largest extra amount, in cents, the advisor scans.
	DefaultTopUpCeiling int64 = 200
	// DefaultMaxSuggestions caps how many top-ups are reported.
	DefaultMaxSuggestions = 2
)

// Advisor searches small extra tender amounts that make the change come out in
// fewer pieces.
type Advisor struct {
	policy         domain.RoundingPolicy
	ceiling        int64
	maxSuggestions int
}

// NewAdvisor creates an Advisor scanning multiples of the policy unit up to
// DefaultTopUpCeiling.
func NewAdvisor(policy domain.RoundingPolicy) *Advisor {
	return &Advisor{
		policy:         policy,
		ceiling:        DefaultTopUpCeiling,
		maxSuggestions: DefaultMaxSuggestions,
	}
}

// Suggest returns at most two extra amounts, ascending, for which
// round(rawChange+extra) decomposes into strictly fewer pieces than
// round(rawChange). The scan stops at the first two hits, so the result is the
// smallest improving extras rather than the globally best ones.
func (a *Advisor) Suggest(rawChange int64, active []domain.Denomination) []int64 {
	suggestions := []int64{}
	step := a.policy.Unit
	if step <= 0 {
		step = 1
	}

	if rawChange < 0 || rawChange > math.MaxInt64-a.ceiling-step {
		return suggestions
	}

	baseline := pieces(a.policy.Round(rawChange), active)
	if baseline <= 1 {
		return suggestions
	}

	for extra := step; extra <= a.ceiling; extra += step {
		candidate := pieces(a.policy.Round(rawChange+extra), active)
		if candidate < baseline {
			suggestions = append(suggestions, extra)
			if len(suggestions) == a.maxSuggestions {
				break
			}
		}
	}
	return suggestions
}
