package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// MatchType selects the team size for a session.
type MatchType string

const (
	Singles MatchType = "singles"
	Doubles MatchType = "doubles"
)

// ParseMatchType converts a config or request string into a MatchType.
func ParseMatchType(s string) (MatchType, error) {
	switch MatchType(s) {
	case Singles, Doubles:
		return MatchType(s), nil
	}
	return "", fmt.Errorf("match type must be %q or %q, got %q", Singles, Doubles, s)
}

// TeamSize returns the number of players on each team.
func (mt MatchType) TeamSize() int {
	if mt == Doubles {
		return 2
	}
	return 1
}

// Team is an unordered group of players. Members are kept sorted so two
// teams with the same players produce the same Key.
type Team struct {
	Players []string
}

// NewTeam builds a team from the given players.
func NewTeam(players ...string) Team {
	ps := make([]string, len(players))
	copy(ps, players)
	sort.Strings(ps)
	return Team{Players: ps}
}

// Key is the canonical identity of the team.
func (t Team) Key() string {
	return strings.Join(t.Players, "|")
}

// Overlaps reports whether the two teams share a player.
func (t Team) Overlaps(o Team) bool {
	for _, p := range t.Players {
		for _, q := range o.Players {
			if p == q {
				return true
			}
		}
	}
	return false
}

// Match is one contest between two teams that share no player.
type Match struct {
	ID    string
	TeamA Team
	TeamB Team
}

// Players returns the players of both teams, team A first.
func (m Match) Players() []string {
	out := make([]string, 0, len(m.TeamA.Players)+len(m.TeamB.Players))
	out = append(out, m.TeamA.Players...)
	out = append(out, m.TeamB.Players...)
	return out
}

// Key identifies the logical match regardless of team order. Two match
// instances with the same pairing share a Key even when their IDs differ.
func (m Match) Key() string {
	a, b := m.TeamA.Key(), m.TeamB.Key()
	if b < a {
		a, b = b, a
	}
	return a + " v " + b
}

// Round is one time slice: the matches played at once plus everyone
// sitting out. Completed is host state; the scheduler never sets it.
type Round struct {
	ID        string
	Matches   []Match
	Resting   []string
	Completed bool
}

// Result is a generated schedule.
type Result struct {
	Rounds  []Round
	Warning string
}

// IDSource supplies opaque unique identifiers for matches and schedules.
type IDSource interface {
	NewID() string
}

// UUIDSource is the production IDSource.
type UUIDSource struct{}

// NewID returns a random UUID string.
func (UUIDSource) NewID() string {
	return uuid.NewString()
}
