package excel

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/derekprior/birdie/internal/schedule"
)

type seqSource struct {
	n int
}

func (s *seqSource) NewID() string {
	s.n++
	return fmt.Sprintf("m%d", s.n)
}

func TestFormatMatch(t *testing.T) {
	tests := []struct {
		name  string
		match schedule.Match
		want  string
	}{
		{
			"singles",
			schedule.Match{TeamA: schedule.NewTeam("Alice"), TeamB: schedule.NewTeam("Bob")},
			"Alice v Bob",
		},
		{
			"doubles",
			schedule.Match{TeamA: schedule.NewTeam("Alice", "Bob"), TeamB: schedule.NewTeam("Carol", "Dmitri")},
			"Alice & Bob v Carol & Dmitri",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMatch(tt.match); got != tt.want {
				t.Errorf("FormatMatch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateWorkbook(t *testing.T) {
	roster := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	res, err := schedule.Generate(roster, 2, schedule.Doubles, &seqSource{})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	f, err := Generate("Club night", res, roster, 2)
	if err != nil {
		t.Fatalf("excel.Generate() error: %v", err)
	}

	t.Run("schedule sheet", func(t *testing.T) {
		rows, err := f.GetRows(SheetSchedule)
		if err != nil {
			t.Fatalf("GetRows() error: %v", err)
		}
		if len(rows) != len(res.Rounds)+1 {
			t.Fatalf("sheet has %d rows, want %d", len(rows), len(res.Rounds)+1)
		}
		header := rows[0]
		want := []string{"Round", "Court 1", "Court 2", "Resting", "Done"}
		for i, h := range want {
			if i >= len(header) || header[i] != h {
				t.Fatalf("header = %v, want %v", header, want)
			}
		}
		for i, row := range rows[1:] {
			if len(row) == 0 || row[0] != fmt.Sprintf("r%d", i+1) {
				t.Errorf("row %d starts with %v, want r%d", i+1, row, i+1)
			}
			if len(row) < 2 || !strings.Contains(row[1], " v ") {
				t.Errorf("row %d has no match in court 1: %v", i+1, row)
			}
		}
	})

	t.Run("players sheet", func(t *testing.T) {
		rows, err := f.GetRows(SheetPlayers)
		if err != nil {
			t.Fatalf("GetRows() error: %v", err)
		}
		if len(rows) != len(roster)+1 {
			t.Fatalf("sheet has %d rows, want %d", len(rows), len(roster)+1)
		}
		for i, row := range rows[1:] {
			if row[0] != roster[i] {
				t.Errorf("row %d player = %q, want %q", i+1, row[0], roster[i])
			}
			played, err1 := strconv.Atoi(row[1])
			rested, err2 := strconv.Atoi(row[2])
			if err1 != nil || err2 != nil {
				t.Fatalf("row %d counts not numeric: %v", i+1, row)
			}
			if played+rested != len(res.Rounds) {
				t.Errorf("%s played %d and rested %d over %d rounds",
					row[0], played, rested, len(res.Rounds))
			}
		}
	})

	t.Run("default sheet removed", func(t *testing.T) {
		for _, name := range f.GetSheetList() {
			if name == "Sheet1" {
				t.Error("Sheet1 should be deleted")
			}
		}
	})
}
