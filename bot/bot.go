package bot

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"ladderspot/model"
	"ladderspot/tasks"
	"ladderspot/utils/database"
	"ladderspot/utils/gdrive"
	"ladderspot/utils/gsheet"
)

type Bot struct {
	Session            *discordgo.Session
	RegisteredCommands []*discordgo.ApplicationCommand
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	Settings           database.SettingsStore
	Puzzles            database.PuzzleStore
	Nexus              tasks.NexusUpdater
	Archiver           tasks.SheetArchiver
	Sheets             *gsheet.Client
	Drive              *gdrive.Client
	DB                 *sqlx.DB

	StartTime time.Time

	config    atomic.Value // *model.Config
	scheduler *Scheduler
	ready     chan struct{}
	readyOnce sync.Once
}

func New(cfg *model.Config, db *sqlx.DB) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsGuildVoiceStates

	b := &Bot{
		Session:   dg,
		Settings:  database.NewGuildSettingsDB(db),
		Puzzles:   database.NewPuzzleJsonDB(db),
		DB:        db,
		StartTime: time.Now().Truncate(time.Second),
		ready:     make(chan struct{}),
	}
	b.config.Store(cfg)
	b.scheduler = NewScheduler(b)
	return b, nil
}

func (b *Bot) GetConfig() *model.Config {
	return b.config.Load().(*model.Config)
}

func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

func (b *Bot) GetScheduler() *Scheduler {
	return b.scheduler
}

func (b *Bot) SettingsStore() database.SettingsStore {
	return b.Settings
}

func (b *Bot) PuzzleStore() database.PuzzleStore {
	return b.Puzzles
}

func (b *Bot) NexusUpdater() tasks.NexusUpdater {
	return b.Nexus
}

func (b *Bot) SheetArchiver() tasks.SheetArchiver {
	return b.Archiver
}

// Ready is closed once the gateway reports readiness; the scheduler
// does not start its periodic work before that.
func (b *Bot) Ready() <-chan struct{} {
	return b.ready
}

// SignalReady arms the scheduler. Safe to call more than once; the
// gateway re-emits Ready on reconnect.
func (b *Bot) SignalReady() {
	b.readyOnce.Do(func() { close(b.ready) })
}

// GuildIDs lists the guilds the bot currently serves.
func (b *Bot) GuildIDs() []string {
	guilds := b.Session.State.Guilds
	ids := make([]string, 0, len(guilds))
	for _, g := range guilds {
		ids = append(ids, g.ID)
	}
	return ids
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	b.scheduler.Stop()
	b.Session.Close()
}
