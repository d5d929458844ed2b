package database

import (
	"fmt"
	"sync"
	"time"

	"ladderspot/model"
)

// MemSettingsStore is an in-memory SettingsStore. Handlers and tests
// can swap it in for the sqlite-backed implementation.
type MemSettingsStore struct {
	mu      sync.Mutex
	records map[string]*model.GuildSettings
}

var _ SettingsStore = (*MemSettingsStore)(nil)

func NewMemSettingsStore() *MemSettingsStore {
	return &MemSettingsStore{records: make(map[string]*model.GuildSettings)}
}

func (s *MemSettingsStore) Get(guildID string) (*model.GuildSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	settings, ok := s.records[guildID]
	if !ok {
		return nil, fmt.Errorf("guild %s: %w", guildID, ErrSettingsNotFound)
	}
	return settings.Clone(), nil
}

func (s *MemSettingsStore) GetCached(guildID string) (*model.GuildSettings, error) {
	return s.Get(guildID)
}

func (s *MemSettingsStore) Commit(settings *model.GuildSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[settings.GuildID] = settings.Clone()
	return nil
}

type puzzleKey struct {
	guildID   string
	channelID string
	roundID   string
	huntID    string
}

// MemPuzzleStore is an in-memory PuzzleStore.
type MemPuzzleStore struct {
	mu      sync.Mutex
	records map[puzzleKey]model.PuzzleData
}

var _ PuzzleStore = (*MemPuzzleStore)(nil)

func NewMemPuzzleStore() *MemPuzzleStore {
	return &MemPuzzleStore{records: make(map[puzzleKey]model.PuzzleData)}
}

func keyOf(p *model.PuzzleData) puzzleKey {
	return puzzleKey{guildID: p.GuildID, channelID: p.ChannelID, roundID: p.RoundID, huntID: p.HuntID}
}

func (s *MemPuzzleStore) Get(guildID, channelID, roundID, huntID string) (*model.PuzzleData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	puzzle, ok := s.records[puzzleKey{guildID: guildID, channelID: channelID, roundID: roundID, huntID: huntID}]
	if !ok {
		return nil, fmt.Errorf("puzzle guild=%s channel=%s round=%s hunt=%s: %w",
			guildID, channelID, roundID, huntID, ErrMissingPuzzle)
	}
	return &puzzle, nil
}

func (s *MemPuzzleStore) GetAll(guildID, huntID string) ([]model.PuzzleData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	puzzles := make([]model.PuzzleData, 0)
	for key, puzzle := range s.records {
		if key.guildID != guildID {
			continue
		}
		if huntID != "" && huntID != "*" && key.huntID != huntID {
			continue
		}
		puzzles = append(puzzles, puzzle)
	}
	return puzzles, nil
}

func (s *MemPuzzleStore) GetSolvedPuzzlesToArchive(guildID string, now time.Time, includeMeta bool, minutes int) ([]model.PuzzleData, error) {
	puzzles, err := s.GetAll(guildID, "*")
	if err != nil {
		return nil, err
	}
	return filterSolvedToArchive(puzzles, now, includeMeta, minutes), nil
}

func (s *MemPuzzleStore) Commit(puzzle *model.PuzzleData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[keyOf(puzzle)] = *puzzle
	return nil
}

func (s *MemPuzzleStore) Delete(puzzle *model.PuzzleData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, keyOf(puzzle))
	return nil
}

func (s *MemPuzzleStore) AggregateJSON() (map[string][]model.PuzzleData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	aggregate := make(map[string][]model.PuzzleData)
	for key, puzzle := range s.records {
		aggregate[key.guildID] = append(aggregate[key.guildID], puzzle)
	}
	return aggregate, nil
}
