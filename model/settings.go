package model

import (
	"fmt"
	"time"
)

// HuntSettings holds the per-event configuration for one puzzle hunt
// within a guild.
type HuntSettings struct {
	HuntID            string     `json:"hunt_id"`
	HuntName          string     `json:"hunt_name"`
	HuntURL           string     `json:"hunt_url"`
	HuntURLSep        string     `json:"hunt_url_sep"` // Separator in puzzle URLs, e.g. - for https://./puzzle/foo-bar
	DriveNexusSheetID string     `json:"drive_nexus_sheet_id"`
	DriveParentID     string     `json:"drive_parent_id"`
	RoleID            string     `json:"role_id"`
	StartTime         *time.Time `json:"start_time,omitempty"`
	EndTime           *time.Time `json:"end_time,omitempty"`
}

// IsActive reports whether the hunt is still running. A hunt is
// deactivated by setting its end time.
func (h *HuntSettings) IsActive() bool {
	return h.EndTime == nil
}

// Validate checks the hunt's time window.
func (h *HuntSettings) Validate() error {
	if h.StartTime != nil && h.EndTime != nil && h.EndTime.Before(*h.StartTime) {
		return fmt.Errorf("hunt %s: end_time %s is before start_time %s", h.HuntID, h.EndTime, h.StartTime)
	}
	return nil
}

// GuildSettings holds the per-guild bot configuration, including all of
// the guild's hunts and the mapping from Discord category IDs to hunts.
type GuildSettings struct {
	GuildID             string                  `json:"guild_id"`
	GuildName           string                  `json:"guild_name"`
	BotChannel          string                  `json:"discord_bot_channel"` // Channel to listen for bot commands
	BotEmoji            string                  `json:"discord_bot_emoji"`   // Short description string or emoji for bot messages
	UseVoiceChannels    bool                    `json:"discord_use_voice_channels"`
	DriveParentID       string                  `json:"drive_parent_id"`
	DriveResourcesID    string                  `json:"drive_resources_id"` // Document with resources links, etc
	DriveStarterSheetID string                  `json:"drive_starter_sheet_id"`
	ArchiveCategoryID   string                  `json:"archive_category_id"`
	HuntSettings        map[string]HuntSettings `json:"hunt_settings"`
	CategoryMapping     map[string]string       `json:"category_mapping"` // category channel ID -> hunt ID
}

// NewGuildSettings returns settings with defaults applied.
func NewGuildSettings(guildID string) *GuildSettings {
	return &GuildSettings{
		GuildID:          guildID,
		BotEmoji:         ":ladder: :dog:",
		UseVoiceChannels: true,
		HuntSettings:     make(map[string]HuntSettings),
		CategoryMapping:  make(map[string]string),
	}
}

// Clone returns a deep copy. Stores hand out clones so that caller
// mutations never reach the cached record before a commit.
func (g *GuildSettings) Clone() *GuildSettings {
	clone := *g
	clone.HuntSettings = make(map[string]HuntSettings, len(g.HuntSettings))
	for huntID, hunt := range g.HuntSettings {
		if hunt.StartTime != nil {
			start := *hunt.StartTime
			hunt.StartTime = &start
		}
		if hunt.EndTime != nil {
			end := *hunt.EndTime
			hunt.EndTime = &end
		}
		clone.HuntSettings[huntID] = hunt
	}
	clone.CategoryMapping = make(map[string]string, len(g.CategoryMapping))
	for categoryID, huntID := range g.CategoryMapping {
		clone.CategoryMapping[categoryID] = huntID
	}
	return &clone
}

// HuntForCategory resolves the hunt a category channel belongs to.
func (g *GuildSettings) HuntForCategory(categoryID string) (HuntSettings, bool) {
	huntID, ok := g.CategoryMapping[categoryID]
	if !ok {
		return HuntSettings{}, false
	}
	hunt, ok := g.HuntSettings[huntID]
	return hunt, ok
}

// Validate checks that every category mapping references a known hunt
// and that each hunt's time window is consistent.
func (g *GuildSettings) Validate() error {
	for categoryID, huntID := range g.CategoryMapping {
		if _, ok := g.HuntSettings[huntID]; !ok {
			return fmt.Errorf("guild %s: category %s maps to unknown hunt %s", g.GuildID, categoryID, huntID)
		}
	}
	for _, hunt := range g.HuntSettings {
		if err := hunt.Validate(); err != nil {
			return fmt.Errorf("guild %s: %w", g.GuildID, err)
		}
	}
	return nil
}
