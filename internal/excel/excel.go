package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/derekprior/birdie/internal/schedule"
)

// Sheet names in the exported workbook.
const (
	SheetSchedule = "Schedule"
	SheetPlayers  = "Players"
)

// FormatMatch renders a match cell, e.g. "Alice & Bob v Carol & Dmitri".
func FormatMatch(m schedule.Match) string {
	return formatTeam(m.TeamA) + " v " + formatTeam(m.TeamB)
}

func formatTeam(t schedule.Team) string {
	return strings.Join(t.Players, " & ")
}

// Generate builds a workbook with the round grid and a per-player
// summary sheet.
func Generate(title string, res *schedule.Result, roster []string, courts int) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetDefaultFont("Arial")

	if title != "" {
		f.SetDocProps(&excelize.DocProperties{Title: title})
	}

	if err := writeScheduleSheet(f, res, courts); err != nil {
		return nil, fmt.Errorf("writing schedule sheet: %w", err)
	}
	if err := writePlayersSheet(f, res, roster); err != nil {
		return nil, fmt.Errorf("writing players sheet: %w", err)
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func writeScheduleSheet(f *excelize.File, res *schedule.Result, courts int) error {
	f.NewSheet(SheetSchedule)

	headers := []string{"Round"}
	for i := 1; i <= courts; i++ {
		headers = append(headers, fmt.Sprintf("Court %d", i))
	}
	headers = append(headers, "Resting", "Done")
	for i, h := range headers {
		f.SetCellValue(SheetSchedule, cellRef(i+1, 1), h)
	}
	if err := boldRow(f, SheetSchedule, len(headers)); err != nil {
		return err
	}

	for i, round := range res.Rounds {
		row := i + 2
		f.SetCellValue(SheetSchedule, cellRef(1, row), round.ID)
		for c, m := range round.Matches {
			f.SetCellValue(SheetSchedule, cellRef(2+c, row), FormatMatch(m))
		}
		f.SetCellValue(SheetSchedule, cellRef(2+courts, row), strings.Join(round.Resting, ", "))
		if round.Completed {
			f.SetCellValue(SheetSchedule, cellRef(3+courts, row), "x")
		}
	}

	f.SetColWidth(SheetSchedule, "A", "A", 8)
	f.SetColWidth(SheetSchedule, "B", columnName(1+courts), 32)
	f.SetColWidth(SheetSchedule, columnName(2+courts), columnName(2+courts), 40)
	return nil
}

func writePlayersSheet(f *excelize.File, res *schedule.Result, roster []string) error {
	f.NewSheet(SheetPlayers)

	headers := []string{"Player", "Played", "Rested", "Longest Rest"}
	for i, h := range headers {
		f.SetCellValue(SheetPlayers, cellRef(i+1, 1), h)
	}
	if err := boldRow(f, SheetPlayers, len(headers)); err != nil {
		return err
	}

	rests, _ := schedule.RestStats(res.Rounds, roster)
	runs := schedule.MaxConsecutiveRests(res.Rounds, roster)

	for i, p := range roster {
		row := i + 2
		f.SetCellValue(SheetPlayers, cellRef(1, row), p)
		f.SetCellValue(SheetPlayers, cellRef(2, row), len(res.Rounds)-rests[p])
		f.SetCellValue(SheetPlayers, cellRef(3, row), rests[p])
		f.SetCellValue(SheetPlayers, cellRef(4, row), runs[p])
	}

	f.SetColWidth(SheetPlayers, "A", "A", 20)
	return nil
}

func boldRow(f *excelize.File, sheet string, cols int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	return f.SetCellStyle(sheet, "A1", cellRef(cols, 1), style)
}

func cellRef(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func columnName(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}
