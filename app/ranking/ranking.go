// Package ranking orders a feed page by the user's category interests.
package ranking

import (
	"strings"

	"github.com/CrestNiraj12/terminalwager/domain"
)

// InterestShare is the fraction of a page reserved for interest matches,
// expressed in tenths so the quota is computed without float rounding.
const InterestShare = 7

// Rank mixes interest-matching and other entities. Matches fill the first
// ceil(n*0.7) slots, the rest come from non-matching entities, and
// any matches left over follow once those run out. Both partitions keep
// their input order. With no interests the input is returned as is.
func Rank(entities []domain.Entity, interests []string) []domain.Entity {
	set := interestSet(interests)
	if len(set) == 0 || len(entities) == 0 {
		return entities
	}

	var match, rest []domain.Entity
	for _, e := range entities {
		if _, ok := set[normalize(e.Category)]; ok {
			match = append(match, e)
		} else {
			rest = append(rest, e)
		}
	}

	n := len(entities)
	take := min(Quota(n), len(match))
	out := make([]domain.Entity, 0, n)
	out = append(out, match[:take]...)
	fill := min(n-take, len(rest))
	out = append(out, rest[:fill]...)
	out = append(out, match[take:]...)
	return out
}

// Quota returns how many slots of an n-item page go to interest matches.
func Quota(n int) int {
	if n <= 0 {
		return 0
	}
	return (n*InterestShare + 9) / 10
}

// Interests normalizes a user-supplied interest list: trimmed, lower-cased,
// de-duplicated, in first-seen order.
func Interests(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		for part := range strings.SplitSeq(r, ",") {
			c := normalize(part)
			if c == "" {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

func interestSet(interests []string) map[string]struct{} {
	set := make(map[string]struct{}, len(interests))
	for _, c := range interests {
		c = normalize(c)
		if c == "" {
			continue
		}
		set[c] = struct{}{}
	}
	return set
}

func normalize(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
