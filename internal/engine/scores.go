package engine

import "sort"

// BestScores keeps the highest scores seen during the process lifetime,
// in descending order, capped at a fixed number of entries.
type BestScores struct {
	limit  int
	values []int
}

// NewBestScores creates an empty table holding at most limit entries.
func NewBestScores(limit int) *BestScores {
	if limit <= 0 {
		limit = DefaultBestScoresLimit
	}
	return &BestScores{limit: limit}
}

// Record inserts a score, re-sorts descending and truncates to the limit.
func (b *BestScores) Record(score int) {
	b.values = append(b.values, score)
	sort.Sort(sort.Reverse(sort.IntSlice(b.values)))
	if len(b.values) > b.limit {
		b.values = b.values[:b.limit]
	}
}

// Values returns a copy of the table.
func (b *BestScores) Values() []int {
	out := make([]int, len(b.values))
	copy(out, b.values)
	return out
}
