package main

import (
	"slices"
	"sort"

	"github.com/dzonerzy/go-yargs/yargs"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxTypoDistance bounds edit-distance suggestions
const maxTypoDistance = 2

// unknownKeys returns the top-level keys of res that no declaration covers,
// directly or through an alias. One name is reported per alias group.
func unknownKeys(res *yargs.Result, declared []string) []string {
	var unknown []string
	reported := make(map[string]bool)

	for _, key := range res.Keys() {
		if key == "_" || key == "--" || slices.Contains(declared, key) || reported[key] {
			continue
		}
		covered := false
		for _, alias := range res.Aliases[key] {
			if slices.Contains(declared, alias) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}

		unknown = append(unknown, key)
		reported[key] = true
		for _, alias := range res.Aliases[key] {
			reported[alias] = true
		}
	}
	return unknown
}

// suggest finds the declared key closest to key. Subsequence matches win;
// otherwise the nearest key within maxTypoDistance edits is used.
func suggest(key string, declared []string) string {
	if len(declared) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(key, declared)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDistance := "", maxTypoDistance+1
	for _, candidate := range declared {
		if d := fuzzy.LevenshteinDistance(key, candidate); d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best
}
