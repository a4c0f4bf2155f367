package validator

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/derekprior/birdie/internal/excel"
	"github.com/derekprior/birdie/internal/schedule"
)

// Violation is one problem found in an exported schedule.
type Violation struct {
	Type    string // "error" or "warning"
	Message string
}

// Validate re-reads an exported workbook and checks the schedule
// offline: round disjointness, roster coverage, and the
// consecutive-rest cap. Rule breaks are errors; rest overruns are
// warnings, since a tight roster cannot always avoid them.
func Validate(path string) ([]Violation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	roster, err := readRoster(f)
	if err != nil {
		return nil, fmt.Errorf("reading roster: %w", err)
	}

	rounds, parseViolations, err := readRounds(f)
	if err != nil {
		return nil, fmt.Errorf("reading rounds: %w", err)
	}

	violations := parseViolations
	violations = append(violations, checkDisjointness(rounds)...)
	violations = append(violations, checkCoverage(rounds, roster)...)
	violations = append(violations, checkRestRuns(rounds, roster)...)
	return violations, nil
}

func readRoster(f *excelize.File) ([]string, error) {
	rows, err := f.GetRows(excel.SheetPlayers)
	if err != nil {
		return nil, fmt.Errorf("reading %s sheet: %w", excel.SheetPlayers, err)
	}
	var roster []string
	for i, row := range rows {
		if i == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		roster = append(roster, row[0])
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("%s sheet lists no players", excel.SheetPlayers)
	}
	return roster, nil
}

func readRounds(f *excelize.File) ([]schedule.Round, []Violation, error) {
	rows, err := f.GetRows(excel.SheetSchedule)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s sheet: %w", excel.SheetSchedule, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s sheet is empty", excel.SheetSchedule)
	}

	header := rows[0]
	restingCol := -1
	for i, h := range header {
		if h == "Resting" {
			restingCol = i
			break
		}
	}
	if restingCol < 1 {
		return nil, nil, fmt.Errorf("%s sheet has no Resting column", excel.SheetSchedule)
	}

	var rounds []schedule.Round
	var violations []Violation
	for i, row := range rows {
		if i == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		round := schedule.Round{ID: row[0]}
		for c := 1; c < restingCol; c++ {
			if c >= len(row) || row[c] == "" {
				continue
			}
			m, ok := parseMatchCell(row[c])
			if !ok {
				violations = append(violations, Violation{
					Type:    "error",
					Message: fmt.Sprintf("round %s: unrecognised match cell %q", round.ID, row[c]),
				})
				continue
			}
			m.ID = fmt.Sprintf("%s-court%d", round.ID, c)
			round.Matches = append(round.Matches, m)
		}
		if restingCol < len(row) && row[restingCol] != "" {
			round.Resting = strings.Split(row[restingCol], ", ")
		}
		rounds = append(rounds, round)
	}
	return rounds, violations, nil
}

// parseMatchCell inverts excel.FormatMatch: "A & B v C & D" becomes a
// match between teams {A,B} and {C,D}.
func parseMatchCell(cell string) (schedule.Match, bool) {
	sides := strings.Split(cell, " v ")
	if len(sides) != 2 {
		return schedule.Match{}, false
	}
	teams := make([]schedule.Team, 2)
	for i, side := range sides {
		players := strings.Split(side, " & ")
		for _, p := range players {
			if p == "" {
				return schedule.Match{}, false
			}
		}
		teams[i] = schedule.NewTeam(players...)
	}
	return schedule.Match{TeamA: teams[0], TeamB: teams[1]}, true
}

func checkDisjointness(rounds []schedule.Round) []Violation {
	ok, errs := schedule.ValidateRounds(rounds)
	if ok {
		return nil
	}
	violations := make([]Violation, 0, len(errs))
	for _, e := range errs {
		violations = append(violations, Violation{Type: "error", Message: e})
	}
	return violations
}

func checkCoverage(rounds []schedule.Round, roster []string) []Violation {
	known := make(map[string]bool, len(roster))
	for _, p := range roster {
		known[p] = true
	}

	var violations []Violation
	for _, round := range rounds {
		seen := make(map[string]bool)
		for _, m := range round.Matches {
			for _, p := range m.Players() {
				seen[p] = true
				if !known[p] {
					violations = append(violations, Violation{
						Type:    "error",
						Message: fmt.Sprintf("round %s: unknown player %s", round.ID, p),
					})
				}
			}
		}
		for _, p := range round.Resting {
			if seen[p] {
				violations = append(violations, Violation{
					Type:    "error",
					Message: fmt.Sprintf("round %s: player %s both plays and rests", round.ID, p),
				})
			}
			seen[p] = true
			if !known[p] {
				violations = append(violations, Violation{
					Type:    "error",
					Message: fmt.Sprintf("round %s: unknown player %s", round.ID, p),
				})
			}
		}
		for _, p := range roster {
			if !seen[p] {
				violations = append(violations, Violation{
					Type:    "error",
					Message: fmt.Sprintf("round %s: player %s is neither playing nor resting", round.ID, p),
				})
			}
		}
	}
	return violations
}

func checkRestRuns(rounds []schedule.Round, roster []string) []Violation {
	target := 2
	if len(roster) <= 7 {
		target = 1
	}

	runs := schedule.MaxConsecutiveRests(rounds, roster)
	var violations []Violation
	for _, p := range roster {
		if runs[p] > target {
			violations = append(violations, Violation{
				Type:    "warning",
				Message: fmt.Sprintf("%s rests %d rounds in a row (target %d)", p, runs[p], target),
			})
		}
	}
	return violations
}
