package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"ladderspot/model"
)

// PuzzleStore is the persistence contract for puzzle records, keyed by
// (guild_id, channel_id, round_id, hunt_id).
type PuzzleStore interface {
	// Get is an exact composite-key lookup. A lookup with a stale
	// round_id (e.g. after a puzzle moved to the solved archive
	// round) legitimately misses with ErrMissingPuzzle; callers that
	// do not need exactness fall back to a round-agnostic search.
	Get(guildID, channelID, roundID, huntID string) (*model.PuzzleData, error)
	// GetAll returns every record for the guild, filtered to one hunt
	// unless huntID is "*". Ordering is not guaranteed; callers
	// needing round-grouped chronological order apply
	// model.SortByRoundStart.
	GetAll(guildID, huntID string) ([]model.PuzzleData, error)
	// GetSolvedPuzzlesToArchive returns solved, not-yet-archived
	// puzzles whose solve time is at least the given number of
	// minutes before now. Metas are skipped unless includeMeta.
	GetSolvedPuzzlesToArchive(guildID string, now time.Time, includeMeta bool, minutes int) ([]model.PuzzleData, error)
	// Commit upserts by composite key.
	Commit(puzzle *model.PuzzleData) error
	// Delete removes by composite key.
	Delete(puzzle *model.PuzzleData) error
	// AggregateJSON dumps all records across all guilds, keyed by
	// guild ID, for backup and export.
	AggregateJSON() (map[string][]model.PuzzleData, error)
}

// PuzzleJsonDB stores puzzle records as JSON in sqlite, keyed by the
// composite (guild_id, channel_id, round_id, hunt_id).
type PuzzleJsonDB struct {
	db *sqlx.DB
}

var _ PuzzleStore = (*PuzzleJsonDB)(nil)

func NewPuzzleJsonDB(db *sqlx.DB) *PuzzleJsonDB {
	return &PuzzleJsonDB{db: db}
}

func (d *PuzzleJsonDB) Get(guildID, channelID, roundID, huntID string) (*model.PuzzleData, error) {
	var record string
	err := d.db.Get(&record,
		"SELECT record FROM puzzles WHERE guild_id = ? AND channel_id = ? AND round_id = ? AND hunt_id = ?",
		guildID, channelID, roundID, huntID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("puzzle guild=%s channel=%s round=%s hunt=%s: %w",
			guildID, channelID, roundID, huntID, ErrMissingPuzzle)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle %s/%s: %w", guildID, channelID, err)
	}

	return decodePuzzle(record)
}

func (d *PuzzleJsonDB) GetAll(guildID, huntID string) ([]model.PuzzleData, error) {
	var records []string
	var err error
	if huntID == "" || huntID == "*" {
		err = d.db.Select(&records, "SELECT record FROM puzzles WHERE guild_id = ?", guildID)
	} else {
		err = d.db.Select(&records, "SELECT record FROM puzzles WHERE guild_id = ? AND hunt_id = ?", guildID, huntID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzles for guild %s: %w", guildID, err)
	}

	puzzles := make([]model.PuzzleData, 0, len(records))
	for _, record := range records {
		puzzle, err := decodePuzzle(record)
		if err != nil {
			return nil, err
		}
		puzzles = append(puzzles, *puzzle)
	}
	return puzzles, nil
}

func (d *PuzzleJsonDB) GetSolvedPuzzlesToArchive(guildID string, now time.Time, includeMeta bool, minutes int) ([]model.PuzzleData, error) {
	puzzles, err := d.GetAll(guildID, "*")
	if err != nil {
		return nil, err
	}
	return filterSolvedToArchive(puzzles, now, includeMeta, minutes), nil
}

func (d *PuzzleJsonDB) Commit(puzzle *model.PuzzleData) error {
	record, err := json.Marshal(puzzle)
	if err != nil {
		return fmt.Errorf("failed to encode puzzle %s/%s: %w", puzzle.GuildID, puzzle.ChannelID, err)
	}

	_, err = d.db.Exec(
		`INSERT OR REPLACE INTO puzzles (guild_id, channel_id, round_id, hunt_id, record)
         VALUES (?, ?, ?, ?, ?)`,
		puzzle.GuildID, puzzle.ChannelID, puzzle.RoundID, puzzle.HuntID, string(record),
	)
	if err != nil {
		return fmt.Errorf("failed to write puzzle %s/%s: %w", puzzle.GuildID, puzzle.ChannelID, err)
	}
	return nil
}

func (d *PuzzleJsonDB) Delete(puzzle *model.PuzzleData) error {
	_, err := d.db.Exec(
		"DELETE FROM puzzles WHERE guild_id = ? AND channel_id = ? AND round_id = ? AND hunt_id = ?",
		puzzle.GuildID, puzzle.ChannelID, puzzle.RoundID, puzzle.HuntID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete puzzle %s/%s: %w", puzzle.GuildID, puzzle.ChannelID, err)
	}
	return nil
}

func (d *PuzzleJsonDB) AggregateJSON() (map[string][]model.PuzzleData, error) {
	rows := []struct {
		GuildID string `db:"guild_id"`
		Record  string `db:"record"`
	}{}
	if err := d.db.Select(&rows, "SELECT guild_id, record FROM puzzles ORDER BY guild_id, channel_id"); err != nil {
		return nil, fmt.Errorf("failed to aggregate puzzles: %w", err)
	}

	aggregate := make(map[string][]model.PuzzleData)
	for _, row := range rows {
		puzzle, err := decodePuzzle(row.Record)
		if err != nil {
			return nil, err
		}
		aggregate[row.GuildID] = append(aggregate[row.GuildID], *puzzle)
	}
	return aggregate, nil
}

func decodePuzzle(record string) (*model.PuzzleData, error) {
	var puzzle model.PuzzleData
	if err := json.Unmarshal([]byte(record), &puzzle); err != nil {
		return nil, fmt.Errorf("failed to decode puzzle record: %w", err)
	}
	return &puzzle, nil
}

// filterSolvedToArchive applies the delayed-archival policy: a puzzle is
// eligible once it has a solution and its solve time is at least the
// grace window in the past. Already-archived records never match.
func filterSolvedToArchive(puzzles []model.PuzzleData, now time.Time, includeMeta bool, minutes int) []model.PuzzleData {
	cutoff := now.Add(-time.Duration(minutes) * time.Minute)

	eligible := make([]model.PuzzleData, 0)
	for _, p := range puzzles {
		if !p.IsSolved() || p.IsArchived() {
			continue
		}
		if p.SolveTime == nil || p.SolveTime.After(cutoff) {
			continue
		}
		if p.IsMeta() && !includeMeta {
			continue
		}
		eligible = append(eligible, p)
	}
	return eligible
}
