package dto

import (
	"time"

	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
)

// CreateTillRequest defines the data needed to create a till profile.
type CreateTillRequest struct {
	Name    string          `json:"name" binding:"required,min=1,max=64"`
	Enabled map[string]bool `json:"enabled" binding:"omitempty,dive,keys,denomination,endkeys"` // Missing names stay enabled
}

// UpdateTillDenominationsRequest toggles denominations on an existing till.
type UpdateTillDenominationsRequest struct {
	Enabled map[string]bool `json:"enabled" binding:"required,min=1,dive,keys,denomination,endkeys"`
}

// TillResponse defines the data returned for a till profile.
type TillResponse struct {
	TillID        string                 `json:"tillID"`
	Name          string                 `json:"name"`
	Denominations []DenominationResponse `json:"denominations"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     string                 `json:"createdBy"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy string                 `json:"lastUpdatedBy"`
}

// ToTillResponse converts a domain.Till to TillResponse DTO
func ToTillResponse(t *domain.Till) TillResponse {
	return TillResponse{
		TillID:        t.TillID,
		Name:          t.Name,
		Denominations: ToDenominationResponses(t.Denominations),
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// ToListTillResponse converts a slice of domain.Till to a slice of TillResponse DTOs
func ToListTillResponse(tills []domain.Till) []TillResponse {
	res := make([]TillResponse, len(tills))
	for i := range tills {
		res[i] = ToTillResponse(&tills[i])
	}
	return res
}
