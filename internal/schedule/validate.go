package schedule

import "fmt"

// ValidateRounds checks a produced schedule for the properties the
// scheduler must never break: no player in two matches of one round, no
// match id reused anywhere. Returns false plus one message per problem.
func ValidateRounds(rounds []Round) (bool, []string) {
	var errs []string
	seenIDs := make(map[string]string) // match id -> round id
	for _, round := range rounds {
		playing := make(map[string]bool)
		for _, m := range round.Matches {
			if prev, ok := seenIDs[m.ID]; ok {
				errs = append(errs, fmt.Sprintf("round %s: match id %s already used in round %s",
					round.ID, m.ID, prev))
			} else {
				seenIDs[m.ID] = round.ID
			}
			for _, p := range m.Players() {
				if playing[p] {
					errs = append(errs, fmt.Sprintf("round %s: player %s appears in more than one match",
						round.ID, p))
				}
				playing[p] = true
			}
		}
	}
	return len(errs) == 0, errs
}
