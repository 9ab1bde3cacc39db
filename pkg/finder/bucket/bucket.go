// Package bucket collapses low-frequency categorical values into a shared
// overflow label so displays only show the top-N distinct categories.
package bucket

import "sort"

// Other is the overflow label assigned to values outside the top N.
const Other = "Other"

// TopN counts occurrences of each distinct value, ranks them by
// descending count with ascending lexicographic order breaking ties, and
// returns a mapping that sends the first topN ranked values to themselves
// and every other distinct value to Other. The tie-break makes repeated
// calls over equal-count inputs reproducible. Empty input or topN <= 0
// yields an empty mapping.
func TopN(values []string, topN int) map[string]string {
	if len(values) == 0 || topN <= 0 {
		return map[string]string{}
	}

	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	ranked := make([]string, 0, len(counts))
	for v := range counts {
		ranked = append(ranked, v)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	keep := topN
	if keep > len(ranked) {
		keep = len(ranked)
	}
	kept := make(map[string]struct{}, keep)
	for _, v := range ranked[:keep] {
		kept[v] = struct{}{}
	}

	mapping := make(map[string]string, len(counts))
	for v := range counts {
		if _, ok := kept[v]; ok {
			mapping[v] = v
		} else {
			mapping[v] = Other
		}
	}
	return mapping
}
