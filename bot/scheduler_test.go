package bot

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ladderspot/model"
	"ladderspot/tasks"
	"ladderspot/utils/database"
)

type countingUpdater struct {
	calls atomic.Int64
}

func (c *countingUpdater) Update(_ context.Context, _ string, _ []model.PuzzleData) error {
	c.calls.Add(1)
	return nil
}

type fakeBot struct {
	cfg      *model.Config
	settings database.SettingsStore
	puzzles  database.PuzzleStore
	updater  tasks.NexusUpdater
	ready    chan struct{}
}

func (f *fakeBot) GetConfig() *model.Config              { return f.cfg }
func (f *fakeBot) GuildIDs() []string                    { return []string{"123"} }
func (f *fakeBot) SettingsStore() database.SettingsStore { return f.settings }
func (f *fakeBot) PuzzleStore() database.PuzzleStore     { return f.puzzles }
func (f *fakeBot) NexusUpdater() tasks.NexusUpdater      { return f.updater }
func (f *fakeBot) SheetArchiver() tasks.SheetArchiver    { return nil }
func (f *fakeBot) Ready() <-chan struct{}                { return f.ready }

func newFakeBot(t *testing.T, updater tasks.NexusUpdater) *fakeBot {
	t.Helper()
	settings := database.NewMemSettingsStore()
	guildSettings := model.NewGuildSettings("123")
	guildSettings.HuntSettings["mh2026"] = model.HuntSettings{
		HuntID:            "mh2026",
		DriveNexusSheetID: "sheet-1",
	}
	require.NoError(t, settings.Commit(guildSettings))

	return &fakeBot{
		cfg: &model.Config{
			NexusRefreshSeconds: 1,
			ArchiveSweepSeconds: 1,
			ArchiveDelayMinutes: 5,
		},
		settings: settings,
		puzzles:  database.NewMemPuzzleStore(),
		updater:  updater,
		ready:    make(chan struct{}),
	}
}

func TestSchedulerWaitsForReadySignal(t *testing.T) {
	updater := &countingUpdater{}
	fake := newFakeBot(t, updater)
	scheduler := NewScheduler(fake)

	scheduler.Start()
	defer scheduler.Stop()

	time.Sleep(50 * time.Millisecond)
	require.Zero(t, updater.calls.Load(), "no updates before the ready signal")

	close(fake.ready)
	require.Eventually(t, func() bool {
		return updater.calls.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond, "first refresh runs right after readiness")
}

func TestSchedulerStopsCleanly(t *testing.T) {
	updater := &countingUpdater{}
	fake := newFakeBot(t, updater)
	scheduler := NewScheduler(fake)

	scheduler.Start()
	close(fake.ready)

	require.Eventually(t, func() bool {
		return updater.calls.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	// Stop blocks until both loops have exited.
	scheduler.Stop()

	settled := updater.calls.Load()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, settled, updater.calls.Load(), "no ticks after Stop")
}

func TestSchedulerNilUpdaterIsNoop(t *testing.T) {
	fake := newFakeBot(t, nil)
	scheduler := NewScheduler(fake)

	scheduler.Start()
	close(fake.ready)
	time.Sleep(50 * time.Millisecond)
	scheduler.Stop()
}
