package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ladderspot/model"
	"ladderspot/utils/database"
)

type recordedUpdate struct {
	sheetID string
	puzzles []model.PuzzleData
}

// fakeUpdater records Update calls and can fail selected sheets.
type fakeUpdater struct {
	updates []recordedUpdate
	failFor map[string]error
}

func (f *fakeUpdater) Update(_ context.Context, sheetID string, puzzles []model.PuzzleData) error {
	f.updates = append(f.updates, recordedUpdate{sheetID: sheetID, puzzles: puzzles})
	if err, ok := f.failFor[sheetID]; ok {
		return err
	}
	return nil
}

func (f *fakeUpdater) sheetIDs() []string {
	ids := make([]string, len(f.updates))
	for i, u := range f.updates {
		ids[i] = u.sheetID
	}
	return ids
}

func setupGuild(t *testing.T) (*database.MemSettingsStore, *database.MemPuzzleStore) {
	t.Helper()
	settings := database.NewMemSettingsStore()
	puzzles := database.NewMemPuzzleStore()

	guildSettings := model.NewGuildSettings("123")
	end := time.Date(2026, 1, 19, 18, 0, 0, 0, time.UTC)
	guildSettings.HuntSettings["active"] = model.HuntSettings{
		HuntID:            "active",
		DriveNexusSheetID: "sheet-active",
	}
	guildSettings.HuntSettings["ended"] = model.HuntSettings{
		HuntID:            "ended",
		DriveNexusSheetID: "sheet-ended",
		EndTime:           &end,
	}
	guildSettings.HuntSettings["unconfigured"] = model.HuntSettings{
		HuntID: "unconfigured",
	}
	require.NoError(t, settings.Commit(guildSettings))

	require.NoError(t, puzzles.Commit(&model.PuzzleData{
		Name: "a-puzzle", GuildID: "123", ChannelID: "500", RoundID: "900", HuntID: "active",
	}))
	return settings, puzzles
}

func TestRefreshNexusOnlyActiveConfiguredHunts(t *testing.T) {
	settings, puzzles := setupGuild(t)
	updater := &fakeUpdater{}

	RefreshNexus(context.Background(), []string{"123"}, settings, puzzles, updater)

	require.Equal(t, []string{"sheet-active"}, updater.sheetIDs())
	require.Len(t, updater.updates[0].puzzles, 1)
	require.Equal(t, "a-puzzle", updater.updates[0].puzzles[0].Name)
}

func TestRefreshNexusContinuesPastFailures(t *testing.T) {
	settings := database.NewMemSettingsStore()
	puzzles := database.NewMemPuzzleStore()

	guildSettings := model.NewGuildSettings("123")
	guildSettings.HuntSettings["a"] = model.HuntSettings{HuntID: "a", DriveNexusSheetID: "sheet-a"}
	guildSettings.HuntSettings["b"] = model.HuntSettings{HuntID: "b", DriveNexusSheetID: "sheet-b"}
	require.NoError(t, settings.Commit(guildSettings))

	updater := &fakeUpdater{
		failFor: map[string]error{"sheet-a": errors.New("quota exceeded")},
	}

	RefreshNexus(context.Background(), []string{"123"}, settings, puzzles, updater)

	// Both hunts are attempted even though one fails.
	require.ElementsMatch(t, []string{"sheet-a", "sheet-b"}, updater.sheetIDs())
}

func TestRefreshNexusSkipsGuildsWithoutSettings(t *testing.T) {
	settings := database.NewMemSettingsStore()
	puzzles := database.NewMemPuzzleStore()
	updater := &fakeUpdater{}

	RefreshNexus(context.Background(), []string{"no-such-guild"}, settings, puzzles, updater)

	require.Empty(t, updater.updates)
}

func TestRefreshNexusMultipleGuilds(t *testing.T) {
	settings, puzzles := setupGuild(t)

	other := model.NewGuildSettings("456")
	other.HuntSettings["hunt2"] = model.HuntSettings{HuntID: "hunt2", DriveNexusSheetID: "sheet-2"}
	require.NoError(t, settings.Commit(other))

	updater := &fakeUpdater{}
	RefreshNexus(context.Background(), []string{"123", "456"}, settings, puzzles, updater)

	require.ElementsMatch(t, []string{"sheet-active", "sheet-2"}, updater.sheetIDs())
}
