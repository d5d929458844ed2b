package handlers

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"ladderspot/bot"
	"ladderspot/model"
	"ladderspot/utils"
)

func HandleSettingsInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	guildName := ""
	if guild, err := s.State.Guild(i.GuildID); err == nil {
		guildName = guild.Name
	}

	settings, err := GetOrCreateSettings(b, i.GuildID, guildName)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load guild settings: "+err.Error())
		return
	}

	sub, opts := subCommand(i)
	switch sub {
	case "show":
		utils.SendEmbedResponse(s, i, settingsEmbed(settings))
	case "set":
		field := optionValue(opts, "field")
		value := optionValue(opts, "value")
		if err := applySetting(settings, field, value); err != nil {
			utils.SendErrorResponse(s, i, err.Error())
			return
		}
		if err := b.Settings.Commit(settings); err != nil {
			utils.SendErrorResponse(s, i, "Unable to save settings: "+err.Error())
			return
		}
		utils.SendPublicResponse(s, i, fmt.Sprintf("%s Set `%s` to `%s`.", settings.BotEmoji, field, value))
	default:
		utils.SendErrorResponse(s, i, "Unknown settings subcommand.")
	}
}

func applySetting(settings *model.GuildSettings, field, value string) error {
	switch field {
	case "bot_channel":
		settings.BotChannel = strings.TrimPrefix(value, "#")
	case "bot_emoji":
		settings.BotEmoji = value
	case "use_voice_channels":
		settings.UseVoiceChannels = value == "true" || value == "1"
	case "drive_parent_id":
		settings.DriveParentID = value
	case "drive_resources_id":
		settings.DriveResourcesID = value
	case "drive_starter_sheet_id":
		settings.DriveStarterSheetID = value
	case "archive_category_id":
		settings.ArchiveCategoryID = value
	default:
		return fmt.Errorf("unknown settings field `%s`", field)
	}
	return nil
}

func settingsEmbed(settings *model.GuildSettings) *discordgo.MessageEmbed {
	hunts := make([]string, 0, len(settings.HuntSettings))
	for huntID, hunt := range settings.HuntSettings {
		state := "active"
		if !hunt.IsActive() {
			state = "ended"
		}
		hunts = append(hunts, fmt.Sprintf("`%s` — %s (%s)", huntID, hunt.HuntName, state))
	}
	huntValue := "none yet"
	if len(hunts) > 0 {
		huntValue = strings.Join(hunts, "\n")
	}

	return &discordgo.MessageEmbed{
		Title: "Guild settings",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Bot channel", Value: orDash(settings.BotChannel), Inline: true},
			{Name: "Emoji", Value: orDash(settings.BotEmoji), Inline: true},
			{Name: "Voice channels", Value: fmt.Sprintf("%t", settings.UseVoiceChannels), Inline: true},
			{Name: "Drive folder", Value: orDash(utils.DriveFolderURL(settings.DriveParentID))},
			{Name: "Resources", Value: orDash(utils.SpreadsheetURL(settings.DriveResourcesID))},
			{Name: "Hunts", Value: huntValue},
		},
	}
}
