package domain

// BreakdownLine is one non-zero entry of a breakdown.
type BreakdownLine struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Count int64  `json:"count"`
}

// Breakdown is the piece-count decomposition of an amount. Lines are ordered by
// descending value and never carry a zero count. Leftover is whatever the
// active denominations could not represent.
type Breakdown struct {
	Lines    []BreakdownLine `json:"lines"`
	Leftover int64           `json:"leftover"`
}

// Pieces returns the total number of physical units in the breakdown.
func (b Breakdown) Pieces() int64 {
	var n int64
	for _, l := range b.Lines {
		n += l.Count
	}
	return n
}

// Total returns the value covered by the breakdown lines plus the leftover.
func (b Breakdown) Total() int64 {
	total := b.Leftover
	for _, l := range b.Lines {
		total += l.Count * l.Value
	}
	return total
}

// Counts returns the breakdown keyed by denomination name.
func (b Breakdown) Counts() map[string]int64 {
	counts := make(map[string]int64, len(b.Lines))
	for _, l := range b.Lines {
		counts[l.Name] = l.Count
	}
	return counts
}

// ChangeResult is the outcome of a successful change computation. All amounts
// are in cents.
type ChangeResult struct {
	Due         int64     `json:"due"`
	Paid        int64     `json:"paid"`
	RawChange   int64     `json:"rawChange"`
	Change      int64     `json:"change"`
	Breakdown   Breakdown `json:"breakdown"`
	Suggestions []int64   `json:"suggestions"`
}
