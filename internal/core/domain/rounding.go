package domain

// NickelUnit is the cash rounding unit in cents.
const NickelUnit int64 = 5

// RoundingPolicy rounds cent amounts to the nearest multiple of Unit.
type RoundingPolicy struct {
	Unit int64
}

// NickelRounding is the Canadian cash rounding rule: remainders 1-2 round
// down, 3-4 round up.
var NickelRounding = RoundingPolicy{Unit: NickelUnit}

// Round snaps amount to a multiple of the unit. A remainder in the lower half
// (r <= Unit/2) rounds down, anything above rounds up.
func (p RoundingPolicy) Round(amount int64) int64 {
	if p.Unit <= 1 {
		return amount
	}
	r := amount % p.Unit
	if r < 0 {
		r += p.Unit
	}
	if r == 0 {
		return amount
	}
	if r <= p.Unit/2 {
		return amount - r
	}
	return amount + (p.Unit - r)
}
