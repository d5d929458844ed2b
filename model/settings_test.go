package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGuildSettingsDefaults(t *testing.T) {
	settings := NewGuildSettings("123")
	require.Equal(t, "123", settings.GuildID)
	require.Equal(t, ":ladder: :dog:", settings.BotEmoji)
	require.True(t, settings.UseVoiceChannels)
	require.NotNil(t, settings.HuntSettings)
	require.NotNil(t, settings.CategoryMapping)
}

func TestGuildSettingsValidateCategoryMapping(t *testing.T) {
	settings := NewGuildSettings("123")
	settings.HuntSettings["mh2026"] = HuntSettings{HuntID: "mh2026", HuntName: "Mystery Hunt"}
	settings.CategoryMapping["900"] = "mh2026"
	require.NoError(t, settings.Validate())

	settings.CategoryMapping["901"] = "nope"
	require.Error(t, settings.Validate())
}

func TestHuntSettingsValidateTimeWindow(t *testing.T) {
	start := time.Date(2026, 1, 16, 12, 0, 0, 0, time.UTC)
	end := start.Add(72 * time.Hour)

	hunt := HuntSettings{HuntID: "mh2026", StartTime: &start, EndTime: &end}
	require.NoError(t, hunt.Validate())

	bad := start.Add(-time.Hour)
	hunt.EndTime = &bad
	require.Error(t, hunt.Validate())
}

func TestGuildSettingsCloneIsDeep(t *testing.T) {
	start := time.Date(2026, 1, 16, 12, 0, 0, 0, time.UTC)
	settings := NewGuildSettings("123")
	settings.HuntSettings["mh2026"] = HuntSettings{HuntID: "mh2026", StartTime: &start}
	settings.CategoryMapping["900"] = "mh2026"

	clone := settings.Clone()
	require.Equal(t, settings, clone)

	*clone.HuntSettings["mh2026"].StartTime = start.Add(time.Hour)
	clone.HuntSettings["mh2026"] = HuntSettings{HuntID: "rogue"}
	clone.CategoryMapping["901"] = "rogue"

	require.Equal(t, "mh2026", settings.HuntSettings["mh2026"].HuntID)
	require.Equal(t, start, *settings.HuntSettings["mh2026"].StartTime)
	require.NotContains(t, settings.CategoryMapping, "901")
}

func TestHuntForCategory(t *testing.T) {
	settings := NewGuildSettings("123")
	settings.HuntSettings["mh2026"] = HuntSettings{HuntID: "mh2026", HuntName: "Mystery Hunt"}
	settings.CategoryMapping["900"] = "mh2026"

	hunt, ok := settings.HuntForCategory("900")
	require.True(t, ok)
	require.Equal(t, "Mystery Hunt", hunt.HuntName)

	_, ok = settings.HuntForCategory("999")
	require.False(t, ok)
}

func TestHuntIsActive(t *testing.T) {
	hunt := HuntSettings{HuntID: "mh2026"}
	require.True(t, hunt.IsActive())

	end := time.Now()
	hunt.EndTime = &end
	require.False(t, hunt.IsActive())
}
