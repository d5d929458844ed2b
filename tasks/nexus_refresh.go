package tasks

import (
	"context"
	"errors"
	"log"

	"ladderspot/model"
	"ladderspot/utils/database"
)

// NexusUpdater pushes puzzle rows to an external dashboard spreadsheet.
// The update is an idempotent upsert; failures are returned as errors.
type NexusUpdater interface {
	Update(ctx context.Context, sheetID string, puzzles []model.PuzzleData) error
}

// RefreshNexus runs one sync tick: for every guild, for every hunt that
// has a nexus sheet configured and is still active, push the hunt's
// puzzles to the dashboard. Hunts are processed sequentially; a failure
// updating one hunt is logged and does not abort the rest.
func RefreshNexus(ctx context.Context, guildIDs []string, settings database.SettingsStore, puzzles database.PuzzleStore, updater NexusUpdater) {
	for _, guildID := range guildIDs {
		guildSettings, err := settings.GetCached(guildID)
		if err != nil {
			if !errors.Is(err, database.ErrSettingsNotFound) {
				log.Printf("nexus: failed to load settings for guild %s: %v", guildID, err)
			}
			continue
		}

		for huntID, hunt := range guildSettings.HuntSettings {
			if hunt.DriveNexusSheetID == "" || !hunt.IsActive() {
				continue
			}

			huntPuzzles, err := puzzles.GetAll(guildID, huntID)
			if err != nil {
				log.Printf("nexus: failed to load puzzles for guild %s hunt %s: %v", guildID, huntID, err)
				continue
			}

			if err := updater.Update(ctx, hunt.DriveNexusSheetID, huntPuzzles); err != nil {
				log.Printf("nexus: failed to update sheet %s for guild %s hunt %s: %v",
					hunt.DriveNexusSheetID, guildID, huntID, err)
			}
		}
	}
}
