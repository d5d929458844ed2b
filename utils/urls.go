package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SpreadsheetURL returns the browser URL for a Google spreadsheet.
func SpreadsheetURL(sheetID string) string {
	if sheetID == "" {
		return ""
	}
	return "https://docs.google.com/spreadsheets/d/" + sheetID + "/edit"
}

// DriveFolderURL returns the browser URL for a Google Drive folder.
func DriveFolderURL(folderID string) string {
	if folderID == "" {
		return ""
	}
	return "https://drive.google.com/drive/folders/" + folderID
}

// PuzzleURL guesses the hunt page for a puzzle from the hunt's base URL
// and word separator, e.g. https://hunt.example.com/puzzle/foo-bar.
func PuzzleURL(huntURL, sep, puzzleName string) string {
	if huntURL == "" {
		return ""
	}
	slug := strings.ToLower(puzzleName)
	slug = strings.ReplaceAll(slug, " ", sep)
	return strings.TrimRight(huntURL, "/") + "/puzzle/" + slug
}

// CapName capitalizes a channel-style name for easy comprehension,
// e.g. "running-for-office" -> "Running For Office".
func CapName(name string) string {
	words := strings.Fields(strings.ReplaceAll(name, "-", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
