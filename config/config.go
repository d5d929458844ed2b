package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"ladderspot/model"
)

// Load loads the configuration from environment variables and data/config.yaml.
func Load() (*model.Config, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	appID := os.Getenv("APP_ID")
	if appID == "" {
		log.Fatal("Error: APP_ID environment variable not set")
	}

	logChannelID := os.Getenv("LOG_CHANNEL_ID")
	if logChannelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID not set, channel logging will be disabled")
	}

	credentialsFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if credentialsFile == "" {
		log.Println("Warning: GOOGLE_CREDENTIALS_FILE not set, Google Drive and Sheets integration will be disabled")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)
	v.SetDefault("database_path", filepath.Join(dataDir, "ladderspot.db"))
	v.SetDefault("nexus_refresh_seconds", 60)
	v.SetDefault("archive_sweep_seconds", 300)
	v.SetDefault("archive_delay_minutes", 5)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("Warning: no config file found in %s, using defaults", dataDir)
		} else {
			return nil, err
		}
	}

	cfg := &model.Config{
		BotToken:              token,
		AppID:                 appID,
		LogChannelID:          logChannelID,
		GoogleCredentialsFile: credentialsFile,
		DataDir:               dataDir,
		DatabasePath:          v.GetString("database_path"),
		NexusRefreshSeconds:   v.GetInt("nexus_refresh_seconds"),
		ArchiveSweepSeconds:   v.GetInt("archive_sweep_seconds"),
		ArchiveDelayMinutes:   v.GetInt("archive_delay_minutes"),
	}

	return cfg, nil
}
