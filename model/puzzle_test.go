package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ts(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return &parsed
}

func TestSortByRoundStart(t *testing.T) {
	t0 := ts(t, "2026-01-17T10:00:00Z")
	t1 := ts(t, "2026-01-17T11:00:00Z")
	t2 := ts(t, "2026-01-17T12:00:00Z")

	p1 := PuzzleData{Name: "p1", RoundName: "A", StartTime: t2}
	p2 := PuzzleData{Name: "p2", RoundName: "A", StartTime: t1}
	p3 := PuzzleData{Name: "p3", RoundName: "B", StartTime: t0}

	sorted := SortByRoundStart([]PuzzleData{p1, p2, p3})

	// Round B started first, and within round A p2 precedes p1.
	require.Equal(t, []string{"p3", "p2", "p1"}, names(sorted))
}

func TestSortByRoundStartGroupsRounds(t *testing.T) {
	t0 := ts(t, "2026-01-17T10:00:00Z")
	t1 := ts(t, "2026-01-17T11:00:00Z")
	t2 := ts(t, "2026-01-17T12:00:00Z")
	t3 := ts(t, "2026-01-17T13:00:00Z")

	// Round A opened before round B, so A's late puzzle still sorts
	// ahead of everything in B.
	puzzles := []PuzzleData{
		{Name: "b1", RoundName: "B", StartTime: t1},
		{Name: "a2", RoundName: "A", StartTime: t3},
		{Name: "a1", RoundName: "A", StartTime: t0},
		{Name: "b2", RoundName: "B", StartTime: t2},
	}

	sorted := SortByRoundStart(puzzles)
	require.Equal(t, []string{"a1", "a2", "b1", "b2"}, names(sorted))
}

func TestSortByRoundStartUntimedRoundSortsFirst(t *testing.T) {
	t0 := ts(t, "2026-01-17T10:00:00Z")

	// A round with no timed puzzles keys on the epoch sentinel and
	// therefore sorts ahead of timed rounds.
	puzzles := []PuzzleData{
		{Name: "timed", RoundName: "A", StartTime: t0},
		{Name: "untimed", RoundName: "Z"},
	}

	sorted := SortByRoundStart(puzzles)
	require.Equal(t, []string{"untimed", "timed"}, names(sorted))
}

func TestSortByRoundStartIsStable(t *testing.T) {
	puzzles := []PuzzleData{
		{Name: "first", RoundName: "A"},
		{Name: "second", RoundName: "A"},
		{Name: "third", RoundName: "A"},
	}

	sorted := SortByRoundStart(puzzles)
	require.Equal(t, []string{"first", "second", "third"}, names(sorted))
}

func names(puzzles []PuzzleData) []string {
	out := make([]string, len(puzzles))
	for i, p := range puzzles {
		out[i] = p.Name
	}
	return out
}

func TestIsSolved(t *testing.T) {
	p := PuzzleData{Status: "stuck"}
	require.False(t, p.IsSolved())

	// A recorded solution wins regardless of the free-text status.
	p.Solution = "LADDER DOG"
	require.True(t, p.IsSolved())
}

func TestIsMeta(t *testing.T) {
	require.True(t, (&PuzzleData{Name: "Meta"}).IsMeta())
	require.True(t, (&PuzzleData{Name: "finale", PuzzleType: "round meta"}).IsMeta())
	require.False(t, (&PuzzleData{Name: "crossword"}).IsMeta())
}
