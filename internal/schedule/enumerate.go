package schedule

// NormalizeRoster drops empty names and duplicates, keeping the first
// occurrence of each player.
func NormalizeRoster(players []string) []string {
	seen := make(map[string]bool, len(players))
	var roster []string
	for _, p := range players {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		roster = append(roster, p)
	}
	return roster
}

// GenerateTeams builds every possible team for the roster: one team per
// player for singles, every unordered pair for doubles.
func GenerateTeams(players []string, mt MatchType) []Team {
	var teams []Team
	if mt != Doubles {
		for _, p := range players {
			teams = append(teams, NewTeam(p))
		}
		return teams
	}
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			teams = append(teams, NewTeam(players[i], players[j]))
		}
	}
	return teams
}

// GenerateMatches pairs every two teams that share no player, stamping a
// fresh id on each match. Output order is stable with respect to team
// order; tie-breaking during scheduling relies on it.
func GenerateMatches(teams []Team, ids IDSource) []Match {
	var matches []Match
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			if teams[i].Overlaps(teams[j]) {
				continue
			}
			matches = append(matches, Match{
				ID:    ids.NewID(),
				TeamA: teams[i],
				TeamB: teams[j],
			})
		}
	}
	return matches
}
