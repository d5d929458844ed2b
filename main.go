package main

import (
	"context"
	"log"
	"os"

	"ladderspot/bot"
	"ladderspot/config"
	"ladderspot/handlers"
	"ladderspot/utils/database"
	"ladderspot/utils/gdrive"
	"ladderspot/utils/gsheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if err := os.MkdirAll(cfg.DataDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	b, err := bot.New(cfg, db)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	if cfg.GoogleCredentialsFile != "" {
		ctx := context.Background()
		sheets, err := gsheet.NewClient(ctx, cfg.GoogleCredentialsFile)
		if err != nil {
			log.Fatalf("Error creating Google Sheets client: %v", err)
		}
		drive, err := gdrive.NewClient(ctx, cfg.GoogleCredentialsFile)
		if err != nil {
			log.Fatalf("Error creating Google Drive client: %v", err)
		}
		b.Sheets = sheets
		b.Drive = drive
		b.Nexus = sheets
		b.Archiver = drive
	}

	handlers.Register(b)

	b.Run()

	defer b.Close()
}
