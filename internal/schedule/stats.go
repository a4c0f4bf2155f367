package schedule

// RestStats totals resting rounds per player and reports the spread
// between the most and least rested. Players who never rest still get a
// zero entry.
func RestStats(rounds []Round, players []string) (map[string]int, int) {
	counts := make(map[string]int, len(players))
	for _, p := range players {
		counts[p] = 0
	}
	for _, round := range rounds {
		for _, p := range round.Resting {
			counts[p]++
		}
	}

	if len(players) == 0 {
		return counts, 0
	}
	min, max := counts[players[0]], counts[players[0]]
	for _, p := range players[1:] {
		c := counts[p]
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	return counts, max - min
}

// MaxConsecutiveRests finds each player's longest run of rounds spent
// resting back to back.
func MaxConsecutiveRests(rounds []Round, players []string) map[string]int {
	longest := make(map[string]int, len(players))
	current := make(map[string]int, len(players))
	for _, p := range players {
		longest[p] = 0
	}
	for _, round := range rounds {
		resting := make(map[string]bool, len(round.Resting))
		for _, p := range round.Resting {
			resting[p] = true
		}
		for _, p := range players {
			if resting[p] {
				current[p]++
				if current[p] > longest[p] {
					longest[p] = current[p]
				}
			} else {
				current[p] = 0
			}
		}
	}
	return longest
}
