package domain_test

import (
	"testing"

	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestBreakdown_Aggregates(t *testing.T) {
	b := domain.Breakdown{
		Lines: []domain.BreakdownLine{
			{Name: "Toonie ($2)", Value: 200, Count: 1},
			{Name: "Quarter (25¢)", Value: 25, Count: 3},
			{Name: "Dime (10¢)", Value: 10, Count: 1},
		},
		Leftover: 2,
	}

	assert.Equal(t, int64(5), b.Pieces())
	assert.Equal(t, int64(287), b.Total())
	assert.Equal(t, map[string]int64{"Toonie ($2)": 1, "Quarter (25¢)": 3, "Dime (10¢)": 1}, b.Counts())
}

func TestBreakdown_Empty(t *testing.T) {
	var b domain.Breakdown
	assert.Zero(t, b.Pieces())
	assert.Zero(t, b.Total())
	assert.Empty(t, b.Counts())
}
