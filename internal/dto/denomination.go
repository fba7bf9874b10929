package dto

import (
	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	"github.com/ahmedhedefa/cashier-ca-web/internal/utils"
)

// DenominationResponse defines the data returned for a catalog piece.
type DenominationResponse struct {
	Name    string `json:"name"`
	Value   int64  `json:"value"`
	Display string `json:"display"`
	Enabled bool   `json:"enabled"`
}

// QuickTenderResponse is one quick-add button offered to the cashier.
type QuickTenderResponse struct {
	Amount  int64  `json:"amount"`
	Display string `json:"display"`
}

// CatalogResponse lists the denomination catalog and the quick-add amounts.
type CatalogResponse struct {
	RoundingUnit  int64                  `json:"roundingUnit"`
	Denominations []DenominationResponse `json:"denominations"`
	QuickTender   []QuickTenderResponse  `json:"quickTender"`
}

// ToDenominationResponses converts a denomination snapshot in catalog order.
func ToDenominationResponses(set domain.DenominationSet) []DenominationResponse {
	res := make([]DenominationResponse, len(set))
	for i, d := range set {
		res[i] = DenominationResponse{
			Name:    d.Name,
			Value:   d.Value,
			Display: utils.FormatCents(d.Value),
			Enabled: d.Enabled,
		}
	}
	return res
}

// ToCatalogResponse builds the catalog listing.
func ToCatalogResponse(set domain.DenominationSet, roundingUnit int64) CatalogResponse {
	quick := make([]QuickTenderResponse, len(domain.QuickTenderAmounts))
	for i, amount := range domain.QuickTenderAmounts {
		quick[i] = QuickTenderResponse{Amount: amount, Display: "+" + utils.FormatCents(amount)}
	}
	return CatalogResponse{
		RoundingUnit:  roundingUnit,
		Denominations: ToDenominationResponses(set),
		QuickTender:   quick,
	}
}
