package domain

import (
	"fmt"
	"sort"
)

// Denomination is a physical bill or coin that can be handed back as change.
// Name is the identity; Value is in cents.
type Denomination struct {
	Name    string `json:"name"`
	Value   int64  `json:"value"`
	Enabled bool   `json:"enabled"`
}

// Canadian catalog, largest first.
var catalog = [...]Denomination{
	{Name: "$100 bill", Value: 10000},
	{Name: "$50 bill", Value: 5000},
	{Name: "$20 bill", Value: 2000},
	{Name: "$10 bill", Value: 1000},
	{Name: "$5 bill", Value: 500},
	{Name: "Toonie ($2)", Value: 200},
	{Name: "Loonie ($1)", Value: 100},
	{Name: "Quarter (25¢)", Value: 25},
	{Name: "Dime (10¢)", Value: 10},
	{Name: "Nickel (5¢)", Value: 5},
}

// QuickTenderAmounts are the fixed increments offered to the cashier for
// bumping the tendered amount (5¢, 10¢, 25¢, $1, $5).
var QuickTenderAmounts = []int64{5, 10, 25, 100, 500}

// DenominationSet is an immutable snapshot of the catalog with its enable flags.
// Methods never mutate the receiver; toggling returns a new set.
type DenominationSet []Denomination

// DefaultCatalog returns a fresh snapshot of the full catalog with every piece enabled.
func DefaultCatalog() DenominationSet {
	set := make(DenominationSet, len(catalog))
	for i, d := range catalog {
		d.Enabled = true
		set[i] = d
	}
	return set
}

// IsKnownDenomination reports whether name belongs to the catalog.
func IsKnownDenomination(name string) bool {
	for _, d := range catalog {
		if d.Name == name {
			return true
		}
	}
	return false
}

// Lookup finds a denomination by name.
func (s DenominationSet) Lookup(name string) (Denomination, bool) {
	for _, d := range s {
		if d.Name == name {
			return d, true
		}
	}
	return Denomination{}, false
}

// WithToggles returns a copy of the set with the given enable flags applied.
// Names not present in the flags keep their current state.
func (s DenominationSet) WithToggles(flags map[string]bool) (DenominationSet, error) {
	out := make(DenominationSet, len(s))
	copy(out, s)
	for name, enabled := range flags {
		idx := -1
		for i := range out {
			if out[i].Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("unknown denomination %q", name)
		}
		out[idx].Enabled = enabled
	}
	return out, nil
}

// Disabled lists the names of the disabled denominations in catalog order.
func (s DenominationSet) Disabled() []string {
	names := []string{}
	for _, d := range s {
		if !d.Enabled {
			names = append(names, d.Name)
		}
	}
	return names
}

// Active returns the enabled denominations sorted by descending value.
func (s DenominationSet) Active() []Denomination {
	active := make([]Denomination, 0, len(s))
	for _, d := range s {
		if d.Enabled && d.Value > 0 {
			active = append(active, d)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Value > active[j].Value
	})
	return active
}
