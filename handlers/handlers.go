package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"ladderspot/bot"
	"ladderspot/utils"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"hunt": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleHuntInteraction(s, i, b)
		},
		"puzzle": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandlePuzzleInteraction(s, i, b)
		},
		"settings": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSettingsInteraction(s, i, b)
		},
		"info": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleInfoInteraction(s, i, b)
		},
		"ping": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandlePingInteraction(s, i)
		},
		"uptime": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleUptimeInteraction(s, i, b)
		},
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
		b.SignalReady()
		if b.GetConfig().LogChannelID != "" {
			utils.LogInfo(s, b.GetConfig().LogChannelID, "System", "Ready", "Gateway session is ready.")
		}
	})

	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if handler, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			handler(s, i)
		}
	})
}

// subCommand unpacks the invoked subcommand name and its options.
func subCommand(i *discordgo.InteractionCreate) (string, []*discordgo.ApplicationCommandInteractionDataOption) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return "", nil
	}
	return data.Options[0].Name, data.Options[0].Options
}

func optionValue(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}
