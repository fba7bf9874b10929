package models

// Till is the persisted form of a till profile. Only the disabled denominations
// are stored; everything else in the catalog is enabled.
type Till struct {
	TillID                string   `db:"till_id"`
	Name                  string   `db:"name"`
	DisabledDenominations []string `db:"disabled_denominations"`
	AuditFields
}
