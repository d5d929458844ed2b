package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"ladderspot/bot"
	"ladderspot/model"
	"ladderspot/utils/database"
)

// GetOrCreateSettings fetches the guild's settings, creating a default
// record on the guild's first interaction.
func GetOrCreateSettings(b *bot.Bot, guildID, guildName string) (*model.GuildSettings, error) {
	settings, err := b.Settings.GetCached(guildID)
	if errors.Is(err, database.ErrSettingsNotFound) {
		settings = model.NewGuildSettings(guildID)
		settings.GuildName = guildName
		if err := b.Settings.Commit(settings); err != nil {
			return nil, err
		}
		return settings, nil
	}
	return settings, err
}

// resolveChannel reads the channel from state, falling back to the API.
func resolveChannel(s *discordgo.Session, channelID string) (*discordgo.Channel, error) {
	channel, err := s.State.Channel(channelID)
	if err == nil {
		return channel, nil
	}
	return s.Channel(channelID)
}

// PuzzleFromChannel looks up the puzzle tracked by the invoking
// channel. The channel's category resolves the hunt and the round; a
// channel under the archive category resolves to the wildcard round.
// On an exact-key miss (stale category after the puzzle moved) the
// lookup falls back to a round-agnostic search over the hunt.
func PuzzleFromChannel(b *bot.Bot, s *discordgo.Session, guildID, channelID string) (*model.PuzzleData, error) {
	channel, err := resolveChannel(s, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve channel %s: %w", channelID, err)
	}
	if channel.ParentID == "" {
		return nil, fmt.Errorf("channel %s has no category: %w", channelID, database.ErrMissingPuzzle)
	}

	settings, err := b.Settings.GetCached(guildID)
	if err != nil {
		return nil, err
	}

	huntID, ok := settings.CategoryMapping[channel.ParentID]
	if !ok {
		return nil, fmt.Errorf("category %s is not part of a hunt: %w", channel.ParentID, database.ErrMissingPuzzle)
	}

	roundID := channel.ParentID
	if channel.ParentID == settings.ArchiveCategoryID {
		roundID = model.SolvedRoundID
	}

	puzzle, err := b.Puzzles.Get(guildID, channelID, roundID, huntID)
	if err == nil {
		return puzzle, nil
	}
	if !errors.Is(err, database.ErrMissingPuzzle) {
		return nil, err
	}

	// The category can be stale, e.g. right after a puzzle moved to
	// the archive round. Fall back to matching on channel alone.
	log.Printf("Unable to retrieve puzzle=%s round=%s, falling back to round-agnostic search", channelID, roundID)
	all, err := b.Puzzles.GetAll(guildID, huntID)
	if err != nil {
		return nil, err
	}
	for idx := range all {
		if all[idx].ChannelID == channelID {
			return &all[idx], nil
		}
	}
	return nil, fmt.Errorf("channel %s: %w", channelID, database.ErrMissingPuzzle)
}

// CheckBotChannel reports whether the command arrived in the guild's
// designated bot channel. An unset setting means every channel is fine.
func CheckBotChannel(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	settings, err := b.Settings.GetCached(i.GuildID)
	if err != nil {
		// No settings yet means no restriction either.
		return true
	}
	if settings.BotChannel == "" {
		return true
	}

	channel, err := resolveChannel(s, i.ChannelID)
	if err != nil {
		return true
	}
	return channel.Name == settings.BotChannel
}
