package handlers

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"ladderspot/bot"
	"ladderspot/utils"
)

func HandlePingInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	latency := s.HeartbeatLatency().Round(time.Millisecond)
	utils.SendPublicResponse(s, i, fmt.Sprintf("Pong! Latency: %s", latency))
}

func HandleUptimeInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	uptime := time.Since(b.StartTime).Truncate(time.Second)
	utils.SendPublicResponse(s, i, fmt.Sprintf("Time since I went online: %s.", uptime))
}

func HandleInfoInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()
	hostInfo, _ := host.Info()

	usedPercent := 0.0
	if vm != nil {
		usedPercent = vm.UsedPercent
	}
	cpuUsage := 0.0
	if len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}
	platform := "unknown"
	if hostInfo != nil {
		platform = fmt.Sprintf("%s %s", hostInfo.Platform, hostInfo.PlatformVersion)
	}

	trackedPuzzles := 0
	if aggregate, err := b.Puzzles.AggregateJSON(); err == nil {
		for _, puzzles := range aggregate {
			trackedPuzzles += len(puzzles)
		}
	}

	embed := &discordgo.MessageEmbed{
		Title: "LadderSpot",
		Color: 0x5865F2, // Discord Blurple
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "Bot Stats",
				Value: fmt.Sprintf("```\nGuilds: %d\nTracked puzzles: %d\nUptime: %s```",
					len(s.State.Guilds), trackedPuzzles, time.Since(b.StartTime).Truncate(time.Second)),
			},
			{
				Name: "System",
				Value: fmt.Sprintf("```\nOS: %s\nCPU: %d cores, %.1f%%\nMemory: %.1f%%\nGo: %s```",
					platform, cpuCount, cpuUsage, usedPercent, runtime.Version()),
			},
		},
	}
	utils.SendEmbedResponse(s, i, embed)
}
