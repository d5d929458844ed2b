package gsheet

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"ladderspot/model"
	"ladderspot/utils"
)

// AddQuickLinksSheet adds a "Quick Links" worksheet to a freshly
// provisioned puzzle spreadsheet with pointers back to the hunt, the
// Drive folder, the nexus and the Discord channel.
func (c *Client) AddQuickLinksSheet(ctx context.Context, sheetID string, puzzle *model.PuzzleData, settings *model.GuildSettings) error {
	addSheet := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title:          "Quick Links",
					GridProperties: &sheets.GridProperties{RowCount: 10, ColumnCount: 2},
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(sheetID, addSheet).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to add quick links sheet to %s: %w", sheetID, err)
	}

	values := &sheets.ValueRange{Values: QuickLinksRows(puzzle, settings)}
	_, err := c.svc.Spreadsheets.Values.Update(sheetID, "Quick Links!A1", values).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write quick links for %s: %w", sheetID, err)
	}
	return nil
}

// QuickLinksRows renders the key-value rows of the Quick Links sheet.
func QuickLinksRows(puzzle *model.PuzzleData, settings *model.GuildSettings) [][]interface{} {
	nexusURL := ""
	if hunt, ok := settings.HuntSettings[puzzle.HuntID]; ok {
		nexusURL = utils.SpreadsheetURL(hunt.DriveNexusSheetID)
	}

	return [][]interface{}{
		{"Hunt URL", puzzle.HuntURL},
		{"Drive folder", utils.DriveFolderURL(puzzle.GoogleFolderID)},
		{"Nexus", nexusURL},
		{"Resources", utils.SpreadsheetURL(settings.DriveResourcesID)},
		{"Discord channel mention", puzzle.ChannelMention},
		{"Reminders", "Please create a new worksheet if you're making large changes (e.g. re-sorting)"},
		{"", "You can use Ctrl+Alt+M to leave a comment on a cell"},
	}
}
