package mapping

import (
	"github.com/ahmedhedefa/cashier-ca-web/internal/core/domain"
	"github.com/ahmedhedefa/cashier-ca-web/internal/models"
)

// ToModelTill converts a domain Till to a model Till
func ToModelTill(d domain.Till) models.Till {
	return models.Till{
		TillID:                d.TillID,
		Name:                  d.Name,
		DisabledDenominations: d.Denominations.Disabled(),
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTill converts a model Till to a domain Till. Stored names that are no
// longer in the catalog are ignored.
func ToDomainTill(m models.Till) domain.Till {
	flags := make(map[string]bool, len(m.DisabledDenominations))
	for _, name := range m.DisabledDenominations {
		if domain.IsKnownDenomination(name) {
			flags[name] = false
		}
	}
	// Every key is a known catalog name, so WithToggles cannot fail here.
	set, _ := domain.DefaultCatalog().WithToggles(flags)

	return domain.Till{
		TillID:        m.TillID,
		Name:          m.Name,
		Denominations: set,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTillSlice converts a slice of model Tills to a slice of domain Tills
func ToDomainTillSlice(ms []models.Till) []domain.Till {
	ds := make([]domain.Till, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTill(m)
	}
	return ds
}
