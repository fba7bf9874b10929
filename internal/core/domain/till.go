package domain

// Till is a named cash drawer profile. Its Denominations snapshot records which
// pieces the drawer actually stocks.
type Till struct {
	TillID        string          `json:"tillID"`
	Name          string          `json:"name"`
	Denominations DenominationSet `json:"denominations"`
	AuditFields
}
