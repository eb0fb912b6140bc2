package ranking

import (
	"fmt"
	"slices"
	"testing"

	"github.com/CrestNiraj12/terminalwager/domain"
)

func entities(categories ...string) []domain.Entity {
	out := make([]domain.Entity, len(categories))
	for i, c := range categories {
		out[i] = domain.Entity{ID: fmt.Sprintf("e%d", i), Category: c}
	}
	return out
}

func ids(es []domain.Entity) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID
	}
	return out
}

func TestRank_IdentityWithoutInterests(t *testing.T) {
	in := entities("crypto", "sports", "tech")
	for _, interests := range [][]string{nil, {}, {"  "}} {
		got := Rank(in, interests)
		if !slices.Equal(ids(got), ids(in)) {
			t.Fatalf("expected identity for interests %q, got %v", interests, ids(got))
		}
	}
}

func TestRank_ScarceMatchesGoFirst(t *testing.T) {
	in := entities("sports", "tech", "crypto", "sports", "tech", "politics", "crypto", "tech", "sports", "tech")
	got := Rank(in, []string{"crypto"})
	want := []string{"e2", "e6", "e0", "e1", "e3", "e4", "e5", "e7", "e8", "e9"}
	if !slices.Equal(ids(got), want) {
		t.Fatalf("got %v want %v", ids(got), want)
	}
}

func TestRank_QuotaThenOthersThenLeftoverMatches(t *testing.T) {
	// 8 matches, 2 others: quota ceil(7) = 7 matches, 2 others, 1 leftover match.
	in := entities("a", "a", "x", "a", "a", "a", "y", "a", "a", "a")
	got := Rank(in, []string{"A"})
	want := []string{"e0", "e1", "e3", "e4", "e5", "e7", "e8", "e2", "e6", "e9"}
	if !slices.Equal(ids(got), want) {
		t.Fatalf("got %v want %v", ids(got), want)
	}
}

func TestRank_PreservesPartitionOrderAndLength(t *testing.T) {
	cats := []string{"a", "b", "c"}
	for n := 0; n < 25; n++ {
		in := make([]domain.Entity, n)
		for i := range in {
			in[i] = domain.Entity{ID: fmt.Sprintf("e%02d", i), Category: cats[(i*7+n)%3]}
		}
		got := Rank(in, []string{"b", "c"})
		if len(got) != n {
			t.Fatalf("n=%d: output length %d", n, len(got))
		}
		seen := make(map[string]int)
		for _, e := range got {
			seen[e.ID]++
		}
		for _, e := range in {
			if seen[e.ID] != 1 {
				t.Fatalf("n=%d: %s appears %d times", n, e.ID, seen[e.ID])
			}
		}
		var lastMatch, lastRest string
		for _, e := range got {
			if e.Category == "a" {
				if e.ID < lastRest {
					t.Fatalf("n=%d: non-matching order broken at %s", n, e.ID)
				}
				lastRest = e.ID
			} else {
				if e.ID < lastMatch {
					t.Fatalf("n=%d: matching order broken at %s", n, e.ID)
				}
				lastMatch = e.ID
			}
		}
		head := min(Quota(n), countMatches(in))
		for i := 0; i < head; i++ {
			if got[i].Category == "a" {
				t.Fatalf("n=%d: slot %d should hold an interest match", n, i)
			}
		}
	}
}

func countMatches(in []domain.Entity) int {
	c := 0
	for _, e := range in {
		if e.Category != "a" {
			c++
		}
	}
	return c
}

func TestQuota(t *testing.T) {
	tests := map[int]int{0: 0, 1: 1, 3: 3, 10: 7, 11: 8, 20: 14}
	for n, want := range tests {
		if got := Quota(n); got != want {
			t.Fatalf("Quota(%d) got %d want %d", n, got, want)
		}
	}
}

func TestInterests_Normalizes(t *testing.T) {
	got := Interests([]string{" Crypto ", "sports,crypto", "", "TECH"})
	want := []string{"crypto", "sports", "tech"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}
