package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ladderspot/model"
)

func testPuzzle(guildID, channelID, roundID, huntID string) *model.PuzzleData {
	start := time.Date(2026, 1, 16, 13, 0, 0, 0, time.UTC)
	return &model.PuzzleData{
		Name:           "a-puzzle",
		HuntName:       "Mystery Hunt 2026",
		HuntID:         huntID,
		RoundName:      "Round One",
		RoundID:        roundID,
		GuildID:        guildID,
		GuildName:      "Ladder Dogs",
		ChannelID:      channelID,
		ChannelMention: "<#" + channelID + ">",
		HuntURL:        "https://example.com/hunt/a-puzzle",
		Status:         "in progress",
		Notes:          []string{"extraction is a phone number"},
		StartTime:      &start,
	}
}

func TestPuzzleRoundTrip(t *testing.T) {
	store := NewPuzzleJsonDB(newTestDB(t))

	committed := testPuzzle("123", "500", "900", "mh2026")
	require.NoError(t, store.Commit(committed))

	fetched, err := store.Get("123", "500", "900", "mh2026")
	require.NoError(t, err)
	require.Equal(t, committed, fetched)
}

func TestPuzzleGetExactKeyMiss(t *testing.T) {
	store := NewPuzzleJsonDB(newTestDB(t))

	require.NoError(t, store.Commit(testPuzzle("123", "500", "900", "mh2026")))

	// A stale round id misses even though the channel exists.
	_, err := store.Get("123", "500", model.SolvedRoundID, "mh2026")
	require.ErrorIs(t, err, ErrMissingPuzzle)
}

func TestPuzzleDelete(t *testing.T) {
	store := NewPuzzleJsonDB(newTestDB(t))

	puzzle := testPuzzle("123", "500", "900", "mh2026")
	require.NoError(t, store.Commit(puzzle))
	require.NoError(t, store.Delete(puzzle))

	_, err := store.Get("123", "500", "900", "mh2026")
	require.ErrorIs(t, err, ErrMissingPuzzle)
}

func TestPuzzleCommitUpserts(t *testing.T) {
	store := NewPuzzleJsonDB(newTestDB(t))

	puzzle := testPuzzle("123", "500", "900", "mh2026")
	require.NoError(t, store.Commit(puzzle))

	solveTime := time.Date(2026, 1, 16, 20, 0, 0, 0, time.UTC)
	puzzle.Solution = "LADDER DOG"
	puzzle.Status = "solved"
	puzzle.SolveTime = &solveTime
	require.NoError(t, store.Commit(puzzle))

	fetched, err := store.Get("123", "500", "900", "mh2026")
	require.NoError(t, err)
	require.Equal(t, "LADDER DOG", fetched.Solution)
	require.True(t, fetched.IsSolved())
}

func TestPuzzleGetAllFiltersByHunt(t *testing.T) {
	store := NewPuzzleJsonDB(newTestDB(t))

	require.NoError(t, store.Commit(testPuzzle("123", "500", "900", "mh2026")))
	require.NoError(t, store.Commit(testPuzzle("123", "501", "901", "other-hunt")))
	require.NoError(t, store.Commit(testPuzzle("456", "502", "902", "mh2026")))

	all, err := store.GetAll("123", "*")
	require.NoError(t, err)
	require.Len(t, all, 2)

	one, err := store.GetAll("123", "mh2026")
	require.NoError(t, err)
	require.Len(t, one, 1)
	require.Equal(t, "500", one[0].ChannelID)
}

func TestGetSolvedPuzzlesToArchive(t *testing.T) {
	store := NewPuzzleJsonDB(newTestDB(t))
	now := time.Date(2026, 1, 16, 21, 0, 0, 0, time.UTC)

	solvedOld := testPuzzle("123", "500", "900", "mh2026")
	solvedOld.Solution = "OLD"
	oldSolve := now.Add(-10 * time.Minute)
	solvedOld.SolveTime = &oldSolve
	require.NoError(t, store.Commit(solvedOld))

	solvedRecent := testPuzzle("123", "501", "900", "mh2026")
	solvedRecent.Solution = "RECENT"
	recentSolve := now.Add(-1 * time.Minute)
	solvedRecent.SolveTime = &recentSolve
	require.NoError(t, store.Commit(solvedRecent))

	// Solution set but no solve time recorded: never eligible.
	solvedNoTime := testPuzzle("123", "502", "900", "mh2026")
	solvedNoTime.Solution = "NOTIME"
	require.NoError(t, store.Commit(solvedNoTime))

	unsolved := testPuzzle("123", "503", "900", "mh2026")
	require.NoError(t, store.Commit(unsolved))

	eligible, err := store.GetSolvedPuzzlesToArchive("123", now, false, 5)
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	require.Equal(t, "500", eligible[0].ChannelID)
}

func TestGetSolvedPuzzlesToArchiveMetaHandling(t *testing.T) {
	store := NewPuzzleJsonDB(newTestDB(t))
	now := time.Date(2026, 1, 16, 21, 0, 0, 0, time.UTC)

	meta := testPuzzle("123", "500", "900", "mh2026")
	meta.Name = "meta"
	meta.Solution = "META ANSWER"
	solve := now.Add(-30 * time.Minute)
	meta.SolveTime = &solve
	require.NoError(t, store.Commit(meta))

	withoutMeta, err := store.GetSolvedPuzzlesToArchive("123", now, false, 5)
	require.NoError(t, err)
	require.Empty(t, withoutMeta)

	withMeta, err := store.GetSolvedPuzzlesToArchive("123", now, true, 5)
	require.NoError(t, err)
	require.Len(t, withMeta, 1)
}

func TestGetSolvedPuzzlesToArchiveSkipsArchived(t *testing.T) {
	store := NewPuzzleJsonDB(newTestDB(t))
	now := time.Date(2026, 1, 16, 21, 0, 0, 0, time.UTC)

	archived := testPuzzle("123", "500", model.SolvedRoundID, "mh2026")
	archived.Solution = "DONE"
	solve := now.Add(-time.Hour)
	archived.SolveTime = &solve
	archiveTime := now.Add(-30 * time.Minute)
	archived.ArchiveTime = &archiveTime
	require.NoError(t, store.Commit(archived))

	eligible, err := store.GetSolvedPuzzlesToArchive("123", now, false, 5)
	require.NoError(t, err)
	require.Empty(t, eligible)
}

func TestAggregateJSONRoundTrip(t *testing.T) {
	store := NewPuzzleJsonDB(newTestDB(t))

	p1 := testPuzzle("123", "500", "900", "mh2026")
	p2 := testPuzzle("123", "501", "900", "mh2026")
	p3 := testPuzzle("456", "502", "902", "other-hunt")
	for _, p := range []*model.PuzzleData{p1, p2, p3} {
		require.NoError(t, store.Commit(p))
	}

	exported, err := store.AggregateJSON()
	require.NoError(t, err)
	require.Len(t, exported["123"], 2)
	require.Len(t, exported["456"], 1)

	// Re-ingest into a fresh store and compare the full export.
	restored := NewPuzzleJsonDB(newTestDB(t))
	for _, puzzles := range exported {
		for i := range puzzles {
			require.NoError(t, restored.Commit(&puzzles[i]))
		}
	}

	reExported, err := restored.AggregateJSON()
	require.NoError(t, err)
	require.Equal(t, exported, reExported)
}
