package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// InitDB opens the bot database and ensures the tables exist.
func InitDB(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schema := `
    CREATE TABLE IF NOT EXISTS guild_settings (
        guild_id TEXT NOT NULL PRIMARY KEY,
        record   TEXT NOT NULL
    );

    CREATE TABLE IF NOT EXISTS puzzles (
        guild_id   TEXT NOT NULL,
        channel_id TEXT NOT NULL,
        round_id   TEXT NOT NULL,
        hunt_id    TEXT NOT NULL,
        record     TEXT NOT NULL,
        PRIMARY KEY (guild_id, channel_id, round_id, hunt_id)
    );`

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}
