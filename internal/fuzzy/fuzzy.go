// Package fuzzy ranks item codes against free-text queries by edit distance.
package fuzzy

import (
	"slices"
	"sort"
)

// Distance returns the Levenshtein distance between a and b: the minimum
// number of single-rune insertions, deletions or substitutions that turn a
// into b. Callers pass the candidate first and the query second.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	costs := make([]int, len(rb)+1)
	for j := range costs {
		costs[j] = j
	}
	for i, ca := range ra {
		costs[0] = i + 1
		corner := i
		for j, cb := range rb {
			upper := costs[j+1]
			if ca == cb {
				costs[j+1] = corner
			} else {
				costs[j+1] = min(corner, upper, costs[j]) + 1
			}
			corner = upper
		}
	}
	return costs[len(rb)]
}

// Match is a candidate code paired with its distance to the query.
type Match struct {
	Code     string
	Distance int
}

// Rank scores every candidate against query and orders the result by
// ascending distance. Equal distances keep code order (ascending), so the
// output is deterministic regardless of the input order.
func Rank(candidates []string, query string) []Match {
	if len(candidates) == 0 {
		return nil
	}
	codes := slices.Clone(candidates)
	slices.Sort(codes)

	out := make([]Match, len(codes))
	for i, code := range codes {
		out[i] = Match{Code: code, Distance: Distance(code, query)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}
