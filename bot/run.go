package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"ladderspot/commands"
	"ladderspot/utils"
)

func (b *Bot) Run() {
	err := b.Session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	log.Println("Registering commands for all guilds...")
	guilds, err := b.Session.UserGuilds(100, "", "", false)
	if err != nil {
		log.Printf("Could not fetch guilds: %v", err)
	} else {
		b.RegisteredCommands = make([]*discordgo.ApplicationCommand, 0)
		for _, guild := range guilds {
			b.RefreshCommands(guild.ID)
		}
	}

	b.GetScheduler().Start()

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	utils.LogInfo(b.Session, b.GetConfig().LogChannelID, "System", "Startup", "Bot has started successfully.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}

// RefreshCommands replaces the guild's slash commands with the current
// definitions.
func (b *Bot) RefreshCommands(guildID string) {
	cmds := commands.GenerateCommands()
	registered, err := b.Session.ApplicationCommandBulkOverwrite(b.GetConfig().AppID, guildID, cmds)
	if err != nil {
		log.Printf("cannot update commands for guild '%s': %v", guildID, err)
		return
	}
	b.RegisteredCommands = append(b.RegisteredCommands, registered...)
	log.Printf("Registered %d commands for guild %s", len(registered), guildID)
}
