package model

import "time"

// Config stores the application configuration, assembled from the
// environment and data/config.yaml at startup.
type Config struct {
	BotToken              string
	AppID                 string
	LogChannelID          string
	GoogleCredentialsFile string
	DataDir               string
	DatabasePath          string
	NexusRefreshSeconds   int
	ArchiveSweepSeconds   int
	ArchiveDelayMinutes   int
}

// NexusRefreshInterval is the fixed period of the nexus sync loop.
func (c *Config) NexusRefreshInterval() time.Duration {
	return time.Duration(c.NexusRefreshSeconds) * time.Second
}

// ArchiveSweepInterval is the period of the solved-puzzle archive sweep.
func (c *Config) ArchiveSweepInterval() time.Duration {
	return time.Duration(c.ArchiveSweepSeconds) * time.Second
}
