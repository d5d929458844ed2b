package gdrive

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	folderMimeType      = "application/vnd.google-apps.folder"
	spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"
)

// Client wraps the Drive API for folder and file management.
type Client struct {
	svc *drive.Service
}

func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	svc, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// GetOrCreateFolder finds a folder by name under the parent, creating
// it when absent. Returns the folder ID.
func (c *Client) GetOrCreateFolder(ctx context.Context, name, parentID string) (string, error) {
	query := fmt.Sprintf(
		"name = '%s' and '%s' in parents and mimeType = '%s' and trashed = false",
		escapeQuery(name), parentID, folderMimeType,
	)
	list, err := c.svc.Files.List().Q(query).Fields("files(id)").PageSize(1).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to look up folder %q: %w", name, err)
	}
	if len(list.Files) > 0 {
		return list.Files[0].Id, nil
	}

	folder, err := c.svc.Files.Create(&drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create folder %q: %w", name, err)
	}
	return folder.Id, nil
}

// CreateSpreadsheet creates an empty spreadsheet in the given folder
// and returns its file ID.
func (c *Client) CreateSpreadsheet(ctx context.Context, title, folderID string) (string, error) {
	file, err := c.svc.Files.Create(&drive.File{
		Name:     title,
		MimeType: spreadsheetMimeType,
		Parents:  []string{folderID},
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet %q: %w", title, err)
	}
	return file.Id, nil
}

// CopySpreadsheet copies a template spreadsheet into the given folder,
// used for the guild's starter sheet.
func (c *Client) CopySpreadsheet(ctx context.Context, sourceID, title, folderID string) (string, error) {
	file, err := c.svc.Files.Copy(sourceID, &drive.File{
		Name:    title,
		Parents: []string{folderID},
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to copy spreadsheet %s: %w", sourceID, err)
	}
	return file.Id, nil
}

// RenameFile applies rename to the file's current name and writes the
// result back. The new name is returned.
func (c *Client) RenameFile(ctx context.Context, fileID string, rename func(string) string) (string, error) {
	file, err := c.svc.Files.Get(fileID).Fields("name").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get file %s: %w", fileID, err)
	}

	newName := rename(file.Name)
	if newName == file.Name {
		return newName, nil
	}

	_, err = c.svc.Files.Update(fileID, &drive.File{Name: newName}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to rename file %s: %w", fileID, err)
	}
	return newName, nil
}

// ArchiveSpreadsheetName prefixes a solved puzzle's sheet name with its
// solution. Already-archived names pass through unchanged.
func ArchiveSpreadsheetName(solution string) func(string) string {
	return func(name string) string {
		if strings.Contains(name, "SOLVED") {
			return name
		}
		return fmt.Sprintf("[SOLVED: %s] %s", solution, name)
	}
}

func escapeQuery(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}
