package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"ladderspot/bot"
	"ladderspot/model"
	"ladderspot/utils"
)

func HandleHuntInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	if !CheckBotChannel(b, s, i) {
		botChannel := ""
		if settings, err := b.Settings.GetCached(i.GuildID); err == nil {
			botChannel = settings.BotChannel
		}
		utils.SendErrorResponse(s, i, fmt.Sprintf("Most bot commands should be sent to #%s", botChannel))
		return
	}

	sub, opts := subCommand(i)
	switch sub {
	case "start":
		handleHuntStart(s, i, b, optionValue(opts, "name"), optionValue(opts, "url"))
	case "end":
		handleHuntEnd(s, i, b, optionValue(opts, "hunt_id"))
	default:
		utils.SendErrorResponse(s, i, "Unknown hunt subcommand.")
	}
}

// handleHuntStart declares a hunt: a category for its channels, a Drive
// folder and a nexus spreadsheet when Google integration is configured.
func handleHuntStart(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, name, url string) {
	guildName := ""
	if guild, err := s.State.Guild(i.GuildID); err == nil {
		guildName = guild.Name
	}

	settings, err := GetOrCreateSettings(b, i.GuildID, guildName)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load guild settings: "+err.Error())
		return
	}

	huntID := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	if _, exists := settings.HuntSettings[huntID]; exists {
		utils.SendErrorResponse(s, i, fmt.Sprintf("Hunt `%s` already exists.", huntID))
		return
	}

	if err := utils.DeferResponse(s, i); err != nil {
		log.Printf("Failed to defer response: %v", err)
		return
	}

	category, err := s.GuildChannelCreateComplex(i.GuildID, discordgo.GuildChannelCreateData{
		Name: utils.CapName(name),
		Type: discordgo.ChannelTypeGuildCategory,
	})
	if err != nil {
		utils.SendFollowUpError(s, i.Interaction, "Unable to create hunt category: "+err.Error())
		return
	}

	now := time.Now()
	hunt := model.HuntSettings{
		HuntID:     huntID,
		HuntName:   name,
		HuntURL:    url,
		HuntURLSep: "-",
		StartTime:  &now,
	}

	if b.Drive != nil && settings.DriveParentID != "" {
		ctx := context.Background()
		folderID, err := b.Drive.GetOrCreateFolder(ctx, utils.CapName(name), settings.DriveParentID)
		if err != nil {
			utils.SendFollowUpError(s, i.Interaction, fmt.Sprintf("Unable to create nexus spreadsheet for %s: %v", name, err))
			return
		}
		hunt.DriveParentID = folderID

		sheetID, err := b.Drive.CreateSpreadsheet(ctx, "Nexus", folderID)
		if err != nil {
			utils.SendFollowUpError(s, i.Interaction, fmt.Sprintf("Unable to create nexus spreadsheet for %s: %v", name, err))
			return
		}
		hunt.DriveNexusSheetID = sheetID
	}

	settings.HuntSettings[huntID] = hunt
	settings.CategoryMapping[category.ID] = huntID
	if err := b.Settings.Commit(settings); err != nil {
		utils.SendFollowUpError(s, i.Interaction, "Unable to save hunt settings: "+err.Error())
		return
	}

	message := fmt.Sprintf("%s Hunt **%s** is on! Use `/puzzle new` inside the %s category.",
		settings.BotEmoji, utils.CapName(name), category.Name)
	if hunt.DriveNexusSheetID != "" {
		message += fmt.Sprintf(" I've created a nexus spreadsheet for you at %s", utils.SpreadsheetURL(hunt.DriveNexusSheetID))
	}
	utils.SendFollowUp(s, i.Interaction, message)
}

// handleHuntEnd stamps the hunt's end time, which stops the nexus sync
// for it.
func handleHuntEnd(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, huntID string) {
	settings, err := GetOrCreateSettings(b, i.GuildID, "")
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load guild settings: "+err.Error())
		return
	}

	hunt, ok := settings.HuntSettings[huntID]
	if !ok {
		utils.SendErrorResponse(s, i, fmt.Sprintf("No hunt named `%s`.", huntID))
		return
	}
	if hunt.EndTime != nil {
		utils.SendErrorResponse(s, i, fmt.Sprintf("Hunt `%s` already ended.", huntID))
		return
	}

	now := time.Now()
	hunt.EndTime = &now
	settings.HuntSettings[huntID] = hunt
	if err := b.Settings.Commit(settings); err != nil {
		utils.SendErrorResponse(s, i, "Unable to save hunt settings: "+err.Error())
		return
	}

	utils.SendPublicResponse(s, i, fmt.Sprintf("%s Hunt **%s** is over. The nexus will stop refreshing.",
		settings.BotEmoji, utils.CapName(hunt.HuntName)))
}
