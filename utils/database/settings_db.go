package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"

	"ladderspot/model"
)

// SettingsStore is the persistence contract for guild settings.
type SettingsStore interface {
	// Get fetches settings from durable storage. It returns
	// ErrSettingsNotFound when the guild has no record.
	Get(guildID string) (*model.GuildSettings, error)
	// GetCached returns the last fetched or committed value for the
	// guild. On a cache miss it behaves like Get and populates the
	// cache. Latency-sensitive read paths use this and tolerate
	// slight staleness.
	GetCached(guildID string) (*model.GuildSettings, error)
	// Commit persists the full settings record. The cache entry is
	// refreshed only after the durable write succeeds.
	Commit(settings *model.GuildSettings) error
}

// GuildSettingsDB stores guild settings as JSON records in sqlite with
// a process-wide read-through cache.
type GuildSettingsDB struct {
	db    *sqlx.DB
	mu    sync.Mutex
	cache map[string]*model.GuildSettings
}

var _ SettingsStore = (*GuildSettingsDB)(nil)

func NewGuildSettingsDB(db *sqlx.DB) *GuildSettingsDB {
	return &GuildSettingsDB{
		db:    db,
		cache: make(map[string]*model.GuildSettings),
	}
}

func (d *GuildSettingsDB) Get(guildID string) (*model.GuildSettings, error) {
	var record string
	err := d.db.Get(&record, "SELECT record FROM guild_settings WHERE guild_id = ?", guildID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("guild %s: %w", guildID, ErrSettingsNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings for guild %s: %w", guildID, err)
	}

	var settings model.GuildSettings
	if err := json.Unmarshal([]byte(record), &settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings for guild %s: %w", guildID, err)
	}
	return &settings, nil
}

func (d *GuildSettingsDB) GetCached(guildID string) (*model.GuildSettings, error) {
	d.mu.Lock()
	cached, ok := d.cache[guildID]
	d.mu.Unlock()
	if ok {
		// Hand out a clone. The cache must only ever change through a
		// successful Commit, not through caller mutations.
		return cached.Clone(), nil
	}

	settings, err := d.Get(guildID)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.cache[guildID] = settings.Clone()
	d.mu.Unlock()
	return settings, nil
}

func (d *GuildSettingsDB) Commit(settings *model.GuildSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	record, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings for guild %s: %w", settings.GuildID, err)
	}

	_, err = d.db.Exec(
		"INSERT OR REPLACE INTO guild_settings (guild_id, record) VALUES (?, ?)",
		settings.GuildID, string(record),
	)
	if err != nil {
		return fmt.Errorf("failed to write settings for guild %s: %w", settings.GuildID, err)
	}

	// Refresh the cache only after the write lands, so the cache never
	// shows a value that was never persisted. A clone keeps later
	// caller mutations out of the cached record.
	d.mu.Lock()
	d.cache[settings.GuildID] = settings.Clone()
	d.mu.Unlock()
	return nil
}
