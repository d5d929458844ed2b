package tasks

import (
	"context"
	"log"
	"time"

	"ladderspot/model"
	"ladderspot/utils/database"
	"ladderspot/utils/gdrive"
)

// SheetArchiver renames a puzzle's spreadsheet once the puzzle is
// archived. Implemented by the Drive client; nil disables renaming.
type SheetArchiver interface {
	RenameFile(ctx context.Context, fileID string, rename func(string) string) (string, error)
}

// ArchiveSolvedPuzzles moves solved puzzles that are past their grace
// window into the solved-archive round. The move re-keys the record
// (delete old composite key, commit under the wildcard round), stamps
// the archive time, and renames the puzzle spreadsheet. Returns the
// number of puzzles archived.
//
// Metas are left in place: they usually need to stay visible while the
// rest of the round is worked.
func ArchiveSolvedPuzzles(ctx context.Context, guildID string, puzzles database.PuzzleStore, archiver SheetArchiver, delayMinutes int, now time.Time) (int, error) {
	eligible, err := puzzles.GetSolvedPuzzlesToArchive(guildID, now, false, delayMinutes)
	if err != nil {
		return 0, err
	}

	archived := 0
	for i := range eligible {
		original := eligible[i]

		// Re-key into the archive round. Commit the new record before
		// deleting the old key: a failure mid-way leaves a transient
		// duplicate, never a lost record.
		archiveTime := now
		puzzle := original
		puzzle.RoundID = model.SolvedRoundID
		puzzle.ArchiveTime = &archiveTime
		if err := puzzles.Commit(&puzzle); err != nil {
			log.Printf("archive: failed to commit archived record for %s/%s: %v", guildID, puzzle.ChannelID, err)
			continue
		}

		if err := puzzles.Delete(&original); err != nil {
			log.Printf("archive: failed to delete old record for %s/%s: %v", guildID, puzzle.ChannelID, err)
			continue
		}
		archived++

		if archiver != nil && puzzle.GoogleSheetID != "" {
			rename := gdrive.ArchiveSpreadsheetName(puzzle.Solution)
			if _, err := archiver.RenameFile(ctx, puzzle.GoogleSheetID, rename); err != nil {
				log.Printf("archive: failed to rename sheet %s for %s/%s: %v",
					puzzle.GoogleSheetID, guildID, puzzle.ChannelID, err)
			}
		}
	}
	return archived, nil
}
