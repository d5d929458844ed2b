package bot

import (
	"context"
	"log"
	"sync"
	"time"

	"ladderspot/model"
	"ladderspot/tasks"
	"ladderspot/utils/database"
)

// BotProvider defines the methods the scheduler needs from the Bot.
type BotProvider interface {
	GetConfig() *model.Config
	GuildIDs() []string
	SettingsStore() database.SettingsStore
	PuzzleStore() database.PuzzleStore
	NexusUpdater() tasks.NexusUpdater
	SheetArchiver() tasks.SheetArchiver
	Ready() <-chan struct{}
}

// Scheduler runs the periodic background work: the nexus dashboard
// refresh and the solved-puzzle archive sweep. Each loop is
// single-flight: the tick work runs inline in the loop goroutine, so a
// new tick never starts before the previous one finishes.
type Scheduler struct {
	bot  BotProvider
	done chan struct{}
	wg   sync.WaitGroup
}

func NewScheduler(bot BotProvider) *Scheduler {
	return &Scheduler{
		bot:  bot,
		done: make(chan struct{}),
	}
}

// Start launches the background loops. They stay idle until the bot
// signals readiness.
func (s *Scheduler) Start() {
	s.wg.Add(2)
	go s.runNexusLoop()
	go s.runArchiveLoop()
}

// Stop terminates the loops gracefully.
func (s *Scheduler) Stop() {
	log.Println("Stopping scheduler...")
	close(s.done)
	s.wg.Wait()
	log.Println("Scheduler stopped.")
}

func (s *Scheduler) runNexusLoop() {
	defer s.wg.Done()

	select {
	case <-s.bot.Ready():
	case <-s.done:
		return
	}
	log.Println("Ready to start updating nexus spreadsheets")

	// Run once before settling into the fixed period.
	s.refreshNexus()

	ticker := time.NewTicker(s.bot.GetConfig().NexusRefreshInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.refreshNexus()
		case <-s.done:
			return
		}
	}
}

func (s *Scheduler) refreshNexus() {
	updater := s.bot.NexusUpdater()
	if updater == nil {
		return
	}
	tasks.RefreshNexus(context.Background(), s.bot.GuildIDs(), s.bot.SettingsStore(), s.bot.PuzzleStore(), updater)
}

func (s *Scheduler) runArchiveLoop() {
	defer s.wg.Done()

	select {
	case <-s.bot.Ready():
	case <-s.done:
		return
	}

	ticker := time.NewTicker(s.bot.GetConfig().ArchiveSweepInterval())
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.sweepArchive()
		case <-s.done:
			return
		}
	}
}

func (s *Scheduler) sweepArchive() {
	cfg := s.bot.GetConfig()
	for _, guildID := range s.bot.GuildIDs() {
		archived, err := tasks.ArchiveSolvedPuzzles(
			context.Background(), guildID, s.bot.PuzzleStore(), s.bot.SheetArchiver(),
			cfg.ArchiveDelayMinutes, time.Now(),
		)
		if err != nil {
			log.Printf("archive: sweep failed for guild %s: %v", guildID, err)
			continue
		}
		if archived > 0 {
			log.Printf("archive: moved %d solved puzzles to the archive round for guild %s", archived, guildID)
		}
	}
}
