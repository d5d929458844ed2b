package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"ladderspot/bot"
	"ladderspot/model"
	"ladderspot/utils"
	"ladderspot/utils/database"
)

func HandlePuzzleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	sub, opts := subCommand(i)

	if sub == "new" {
		handlePuzzleNew(s, i, b, optionValue(opts, "name"))
		return
	}

	puzzle, err := PuzzleFromChannel(b, s, i.GuildID, i.ChannelID)
	if err != nil {
		if errors.Is(err, database.ErrMissingPuzzle) {
			utils.SendErrorResponse(s, i, "Can't find puzzle data for this channel. Is this a puzzle channel?")
		} else {
			log.Printf("puzzle %s: failed to resolve channel %s: %v", sub, i.ChannelID, err)
			utils.SendErrorResponse(s, i, "Failed to look up puzzle data: "+err.Error())
		}
		return
	}

	settings, err := GetOrCreateSettings(b, i.GuildID, "")
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load guild settings: "+err.Error())
		return
	}
	emoji := settings.BotEmoji

	switch sub {
	case "status":
		puzzle.Status = optionValue(opts, "status")
		commitAndRespond(s, i, b, puzzle, fmt.Sprintf("%s Status set to `%s`", emoji, puzzle.Status))
	case "solve":
		now := time.Now()
		puzzle.Solution = strings.ToUpper(optionValue(opts, "solution"))
		puzzle.Status = "solved"
		puzzle.SolveTime = &now
		commitAndRespond(s, i, b, puzzle, fmt.Sprintf(
			"%s Solved! `%s` recorded. Channel will be archived in %d minutes.",
			emoji, puzzle.Solution, b.GetConfig().ArchiveDelayMinutes))
	case "unsolve":
		puzzle.Solution = ""
		puzzle.Status = ""
		puzzle.SolveTime = nil
		commitAndRespond(s, i, b, puzzle, fmt.Sprintf("%s Solution cleared.", emoji))
	case "note":
		puzzle.Notes = append(puzzle.Notes, optionValue(opts, "text"))
		commitAndRespond(s, i, b, puzzle, fmt.Sprintf("%s Added note %d.", emoji, len(puzzle.Notes)))
	case "priority":
		puzzle.Priority = optionValue(opts, "level")
		commitAndRespond(s, i, b, puzzle, fmt.Sprintf("%s Priority set to `%s`", emoji, puzzle.Priority))
	case "type":
		puzzle.PuzzleType = optionValue(opts, "type")
		commitAndRespond(s, i, b, puzzle, fmt.Sprintf("%s Type set to `%s`", emoji, puzzle.PuzzleType))
	case "link":
		puzzle.HuntURL = optionValue(opts, "url")
		commitAndRespond(s, i, b, puzzle, fmt.Sprintf("%s Puzzle link updated: %s", emoji, puzzle.HuntURL))
	case "info":
		utils.SendEmbedResponse(s, i, puzzleInfoEmbed(puzzle))
	case "delete":
		if err := b.Puzzles.Delete(puzzle); err != nil {
			utils.SendErrorResponse(s, i, "Failed to delete puzzle data: "+err.Error())
			return
		}
		utils.SendPublicResponse(s, i, fmt.Sprintf("%s Deleted puzzle data for **%s**.", emoji, puzzle.Name))
	default:
		utils.SendErrorResponse(s, i, "Unknown puzzle subcommand.")
	}
}

func commitAndRespond(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, puzzle *model.PuzzleData, message string) {
	if err := b.Puzzles.Commit(puzzle); err != nil {
		log.Printf("Failed to commit puzzle %s/%s: %v", puzzle.GuildID, puzzle.ChannelID, err)
		utils.SendErrorResponse(s, i, "Failed to save puzzle data: "+err.Error())
		return
	}
	utils.SendPublicResponse(s, i, message)
}

func puzzleInfoEmbed(puzzle *model.PuzzleData) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Hunt", Value: orDash(puzzle.HuntName), Inline: true},
		{Name: "Round", Value: orDash(puzzle.RoundName), Inline: true},
		{Name: "Status", Value: orDash(puzzle.Status), Inline: true},
		{Name: "Solution", Value: orDash(puzzle.Solution), Inline: true},
		{Name: "Priority", Value: orDash(puzzle.Priority), Inline: true},
		{Name: "Type", Value: orDash(puzzle.PuzzleType), Inline: true},
		{Name: "Puzzle page", Value: orDash(puzzle.HuntURL)},
		{Name: "Spreadsheet", Value: orDash(utils.SpreadsheetURL(puzzle.GoogleSheetID))},
	}
	if len(puzzle.Notes) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Notes",
			Value: strings.Join(puzzle.Notes, "\n"),
		})
	}
	return &discordgo.MessageEmbed{
		Title:  utils.CapName(puzzle.Name),
		Fields: fields,
	}
}

func orDash(value string) string {
	if value == "" {
		return "—"
	}
	return value
}

// handlePuzzleNew provisions a puzzle channel in the invoking
// category, with an optional voice channel and spreadsheet. The
// interaction is deferred: Drive calls routinely exceed the response
// window.
func handlePuzzleNew(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, name string) {
	if name == "" {
		utils.SendErrorResponse(s, i, "Puzzle name is required.")
		return
	}

	invoking, err := resolveChannel(s, i.ChannelID)
	if err != nil || invoking.ParentID == "" {
		utils.SendErrorResponse(s, i, "Run this inside a hunt category so I know which round the puzzle belongs to.")
		return
	}

	settings, err := GetOrCreateSettings(b, i.GuildID, "")
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to load guild settings: "+err.Error())
		return
	}

	hunt, ok := settings.HuntForCategory(invoking.ParentID)
	if !ok {
		utils.SendErrorResponse(s, i, "This category isn't part of a hunt. Use `/hunt start` first.")
		return
	}

	category, err := resolveChannel(s, invoking.ParentID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Failed to resolve the category: "+err.Error())
		return
	}

	if err := utils.DeferResponse(s, i); err != nil {
		log.Printf("Failed to defer response: %v", err)
		return
	}

	channelName := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	channel, err := s.GuildChannelCreateComplex(i.GuildID, discordgo.GuildChannelCreateData{
		Name:     channelName,
		Type:     discordgo.ChannelTypeGuildText,
		ParentID: category.ID,
	})
	if err != nil {
		utils.SendFollowUpError(s, i.Interaction, "Unable to create puzzle channel: "+err.Error())
		return
	}

	now := time.Now()
	puzzle := &model.PuzzleData{
		Name:           channelName,
		HuntName:       hunt.HuntName,
		HuntID:         hunt.HuntID,
		RoundName:      category.Name,
		RoundID:        category.ID,
		GuildID:        i.GuildID,
		GuildName:      settings.GuildName,
		ChannelID:      channel.ID,
		ChannelMention: channel.Mention(),
		HuntURL:        utils.PuzzleURL(hunt.HuntURL, hunt.HuntURLSep, channelName),
		StartTime:      &now,
	}

	if settings.UseVoiceChannels {
		voice, err := s.GuildChannelCreateComplex(i.GuildID, discordgo.GuildChannelCreateData{
			Name:     channelName,
			Type:     discordgo.ChannelTypeGuildVoice,
			ParentID: category.ID,
		})
		if err != nil {
			log.Printf("Unable to create voice channel for %s: %v", channelName, err)
		} else {
			puzzle.VoiceChannelID = voice.ID
		}
	}

	if err := provisionSpreadsheet(b, puzzle, settings, hunt); err != nil {
		// The puzzle is still tracked; the sheet can be retried later.
		log.Printf("Unable to create spreadsheet for %s/%s: %v", puzzle.RoundName, puzzle.Name, err)
		utils.LogError(s, b.GetConfig().LogChannelID, "Puzzle", "Spreadsheet",
			fmt.Sprintf("Unable to create spreadsheet for %s/%s: %v", puzzle.RoundName, puzzle.Name, err))
	}

	if err := b.Puzzles.Commit(puzzle); err != nil {
		utils.SendFollowUpError(s, i.Interaction, "Unable to save puzzle data: "+err.Error())
		return
	}

	message := fmt.Sprintf("%s Created %s for puzzle **%s**.", settings.BotEmoji, puzzle.ChannelMention, utils.CapName(name))
	if puzzle.GoogleSheetID != "" {
		message += fmt.Sprintf(" Spreadsheet: %s — check the `Quick Links` tab!", utils.SpreadsheetURL(puzzle.GoogleSheetID))
	}
	if puzzle.HuntURL != "" {
		message += fmt.Sprintf(" I've assumed the puzzle page is %s, use `/puzzle link` to update if needed.", puzzle.HuntURL)
	}
	utils.SendFollowUp(s, i.Interaction, message)
}

// provisionSpreadsheet creates the puzzle's sheet in the round folder,
// copying the guild's starter sheet when one is configured.
func provisionSpreadsheet(b *bot.Bot, puzzle *model.PuzzleData, settings *model.GuildSettings, hunt model.HuntSettings) error {
	if b.Drive == nil || hunt.DriveParentID == "" {
		return nil
	}
	ctx := context.Background()

	title := utils.CapName(puzzle.Name)
	if strings.EqualFold(puzzle.Name, "meta") {
		// Distinguish metas between different rounds.
		title = fmt.Sprintf("%s (%s)", title, utils.CapName(puzzle.RoundName))
	}

	folderID, err := b.Drive.GetOrCreateFolder(ctx, utils.CapName(puzzle.RoundName), hunt.DriveParentID)
	if err != nil {
		return err
	}

	var sheetID string
	if settings.DriveStarterSheetID != "" {
		sheetID, err = b.Drive.CopySpreadsheet(ctx, settings.DriveStarterSheetID, title, folderID)
	} else {
		sheetID, err = b.Drive.CreateSpreadsheet(ctx, title, folderID)
	}
	if err != nil {
		return err
	}

	puzzle.GoogleFolderID = folderID
	puzzle.GoogleSheetID = sheetID

	if b.Sheets != nil {
		if err := b.Sheets.AddQuickLinksSheet(ctx, sheetID, puzzle, settings); err != nil {
			log.Printf("Failed to add quick links sheet to %s: %v", sheetID, err)
		}
	}
	return nil
}
