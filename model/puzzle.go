package model

import (
	"sort"
	"strings"
	"time"
)

// SolvedRoundID is the wildcard round used as the aggregation bucket for
// solved puzzles that have been moved out of their original category.
const SolvedRoundID = "*"

// PuzzleData is one puzzle instance, keyed by
// (guild_id, channel_id, round_id, hunt_id).
type PuzzleData struct {
	Name                  string     `json:"name"`
	HuntName              string     `json:"hunt_name"`
	HuntID                string     `json:"hunt_id"`
	RoundName             string     `json:"round_name"`
	RoundID               string     `json:"round_id"` // round = category channel
	GuildID               string     `json:"guild_id"`
	GuildName             string     `json:"guild_name"`
	ChannelID             string     `json:"channel_id"`
	ChannelMention        string     `json:"channel_mention"`
	VoiceChannelID        string     `json:"voice_channel_id"`
	ArchiveChannelMention string     `json:"archive_channel_mention"`
	HuntURL               string     `json:"hunt_url"`
	GoogleSheetID         string     `json:"google_sheet_id"`
	GoogleFolderID        string     `json:"google_folder_id"`
	Status                string     `json:"status"`
	Solution              string     `json:"solution"`
	Priority              string     `json:"priority"`
	PuzzleType            string     `json:"puzzle_type"`
	Notes                 []string   `json:"notes"`
	StartTime             *time.Time `json:"start_time,omitempty"`
	SolveTime             *time.Time `json:"solve_time,omitempty"`
	ArchiveTime           *time.Time `json:"archive_time,omitempty"`
}

// IsSolved reports whether the puzzle has been solved. A non-empty
// solution wins over whatever the free-text status says.
func (p *PuzzleData) IsSolved() bool {
	return p.Solution != ""
}

// IsArchived reports whether the solved puzzle has been moved to the
// archive round.
func (p *PuzzleData) IsArchived() bool {
	return p.ArchiveTime != nil
}

// IsMeta reports whether this looks like a meta puzzle. Metas usually
// need to stay visible after solving, so archival treats them specially.
func (p *PuzzleData) IsMeta() bool {
	return strings.EqualFold(p.Name, "meta") || strings.Contains(strings.ToLower(p.PuzzleType), "meta")
}

// SortByRoundStart returns the puzzles sorted so that puzzles of the
// same round are grouped together, rounds ordered by the earliest
// start_time of any of their puzzles, and puzzles within a round
// ordered by their own start_time.
//
// Puzzles without a start_time do not contribute to their round's
// minimum and fall back to the epoch-zero sentinel, so a round with no
// timed puzzles sorts first, not last. Callers wanting those rounds
// last must pre-filter.
func SortByRoundStart(puzzles []PuzzleData) []PuzzleData {
	roundStarts := make(map[string]time.Time)
	for _, p := range puzzles {
		if p.StartTime == nil {
			continue
		}
		cur, ok := roundStarts[p.RoundName]
		if !ok || p.StartTime.Before(cur) {
			roundStarts[p.RoundName] = *p.StartTime
		}
	}

	sentinel := time.Unix(0, 0).UTC()
	key := func(p PuzzleData) (time.Time, time.Time) {
		roundStart, ok := roundStarts[p.RoundName]
		if !ok {
			roundStart = sentinel
		}
		puzzleStart := sentinel
		if p.StartTime != nil {
			puzzleStart = *p.StartTime
		}
		return roundStart, puzzleStart
	}

	sorted := make([]PuzzleData, len(puzzles))
	copy(sorted, puzzles)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, pi := key(sorted[i])
		rj, pj := key(sorted[j])
		if !ri.Equal(rj) {
			return ri.Before(rj)
		}
		return pi.Before(pj)
	})
	return sorted
}
