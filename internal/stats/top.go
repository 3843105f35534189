package stats

import (
	"sort"

	"github.com/verte-zerg/passgen/internal/model"
)

// TopChars returns the top N characters by count.
func TopChars(counts map[byte]int, n int) []model.CharCount {
	if n <= 0 || len(counts) == 0 {
		return nil
	}
	items := make([]model.CharCount, 0, len(counts))
	for ch, c := range counts {
		items = append(items, model.CharCount{Char: string(ch), Count: c})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Char < items[j].Char
		}
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
