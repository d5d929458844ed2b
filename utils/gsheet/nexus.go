package gsheet

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/sheets/v4"

	"ladderspot/model"
	"ladderspot/utils"
)

// nexusRange covers the header plus every column NexusRows renders.
const nexusRange = "A:J"

// Update rewrites the nexus dashboard sheet with the current state of
// every puzzle. Clearing and rewriting the whole range makes the
// update idempotent.
func (c *Client) Update(ctx context.Context, sheetID string, puzzles []model.PuzzleData) error {
	_, err := c.svc.Spreadsheets.Values.Clear(sheetID, nexusRange, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear nexus sheet %s: %w", sheetID, err)
	}

	values := &sheets.ValueRange{Values: NexusRows(puzzles)}
	_, err = c.svc.Spreadsheets.Values.Update(sheetID, "A1", values).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update nexus sheet %s: %w", sheetID, err)
	}
	return nil
}

// NexusRows renders the dashboard rows: a header followed by one row
// per puzzle, grouped by round in chronological round order.
func NexusRows(puzzles []model.PuzzleData) [][]interface{} {
	rows := [][]interface{}{
		{"Round", "Puzzle", "Status", "Solution", "Priority", "Type", "Channel", "Sheet", "Started", "Solved"},
	}
	for _, p := range model.SortByRoundStart(puzzles) {
		status := p.Status
		if p.IsSolved() && status == "" {
			status = "solved"
		}
		rows = append(rows, []interface{}{
			p.RoundName,
			utils.CapName(p.Name),
			status,
			p.Solution,
			p.Priority,
			p.PuzzleType,
			p.ChannelMention,
			utils.SpreadsheetURL(p.GoogleSheetID),
			formatTime(p.StartTime),
			formatTime(p.SolveTime),
		})
	}
	return rows
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04")
}
