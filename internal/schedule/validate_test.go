package schedule

import (
	"strings"
	"testing"
)

func singlesMatch(id, a, b string) Match {
	return Match{ID: id, TeamA: NewTeam(a), TeamB: NewTeam(b)}
}

func TestValidateRounds(t *testing.T) {
	t.Run("clean schedule passes", func(t *testing.T) {
		rounds := []Round{
			{ID: "r1", Matches: []Match{singlesMatch("m1", "A", "B")}, Resting: []string{"C", "D", "E"}},
			{ID: "r2", Matches: []Match{singlesMatch("m2", "C", "D")}, Resting: []string{"A", "B", "E"}},
		}
		ok, errs := ValidateRounds(rounds)
		if !ok || len(errs) != 0 {
			t.Errorf("ValidateRounds = %v, %v; want clean", ok, errs)
		}
	})

	t.Run("player in two matches of one round", func(t *testing.T) {
		rounds := []Round{
			{ID: "r1", Matches: []Match{
				singlesMatch("m1", "A", "B"),
				singlesMatch("m2", "A", "C"),
			}},
		}
		ok, errs := ValidateRounds(rounds)
		if ok {
			t.Fatal("expected a violation")
		}
		if len(errs) != 1 || !strings.Contains(errs[0], "player A") {
			t.Errorf("errs = %v, want one mention of player A", errs)
		}
	})

	t.Run("match id reused across rounds", func(t *testing.T) {
		rounds := []Round{
			{ID: "r1", Matches: []Match{singlesMatch("m1", "A", "B")}},
			{ID: "r2", Matches: []Match{singlesMatch("m1", "C", "D")}},
		}
		ok, errs := ValidateRounds(rounds)
		if ok {
			t.Fatal("expected a violation")
		}
		if len(errs) != 1 || !strings.Contains(errs[0], "match id m1") {
			t.Errorf("errs = %v, want one mention of match id m1", errs)
		}
	})
}

func TestRestStats(t *testing.T) {
	players := []string{"A", "B", "C", "D", "E"}
	rounds := []Round{
		{ID: "r1", Matches: []Match{singlesMatch("m1", "A", "B")}, Resting: []string{"C", "D", "E"}},
		{ID: "r2", Matches: []Match{singlesMatch("m2", "C", "D")}, Resting: []string{"A", "B", "E"}},
		{ID: "r3", Matches: []Match{singlesMatch("m3", "A", "E")}, Resting: []string{"B", "C", "D"}},
	}

	counts, maxDiff := RestStats(rounds, players)

	want := map[string]int{"A": 1, "B": 2, "C": 2, "D": 2, "E": 2}
	for p, w := range want {
		if counts[p] != w {
			t.Errorf("rest[%s] = %d, want %d", p, counts[p], w)
		}
	}
	if maxDiff != 1 {
		t.Errorf("maxDiff = %d, want 1", maxDiff)
	}

	t.Run("players who never rest get a zero entry", func(t *testing.T) {
		counts, maxDiff := RestStats(rounds[:1], []string{"A", "B", "C"})
		if c, ok := counts["A"]; !ok || c != 0 {
			t.Errorf("rest[A] = %d (present %v), want 0 entry", c, ok)
		}
		if maxDiff != 1 {
			t.Errorf("maxDiff = %d, want 1", maxDiff)
		}
	})
}

func TestMaxConsecutiveRests(t *testing.T) {
	players := []string{"A", "B", "C"}
	rounds := []Round{
		{ID: "r1", Resting: []string{"A", "B"}},
		{ID: "r2", Resting: []string{"A"}},
		{ID: "r3", Resting: []string{"B"}},
		{ID: "r4", Resting: []string{"A", "B"}},
	}

	runs := MaxConsecutiveRests(rounds, players)

	want := map[string]int{"A": 2, "B": 2, "C": 0}
	for p, w := range want {
		if runs[p] != w {
			t.Errorf("run[%s] = %d, want %d", p, runs[p], w)
		}
	}
}
