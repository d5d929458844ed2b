package gsheet

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps the Sheets API for nexus updates and puzzle-sheet setup.
// Constructed once at startup and injected into whichever component
// needs it.
type Client struct {
	svc *sheets.Service
}

func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{svc: svc}, nil
}
