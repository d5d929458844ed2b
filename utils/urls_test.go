package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpreadsheetURL(t *testing.T) {
	require.Equal(t, "https://docs.google.com/spreadsheets/d/abc123/edit", SpreadsheetURL("abc123"))
	require.Equal(t, "", SpreadsheetURL(""))
}

func TestDriveFolderURL(t *testing.T) {
	require.Equal(t, "https://drive.google.com/drive/folders/f1", DriveFolderURL("f1"))
	require.Equal(t, "", DriveFolderURL(""))
}

func TestPuzzleURL(t *testing.T) {
	require.Equal(t, "https://hunt.example.com/puzzle/foo-bar", PuzzleURL("https://hunt.example.com/", "-", "Foo Bar"))
	require.Equal(t, "https://hunt.example.com/puzzle/foo_bar", PuzzleURL("https://hunt.example.com", "_", "foo bar"))
	require.Equal(t, "", PuzzleURL("", "-", "foo"))
}

func TestCapName(t *testing.T) {
	require.Equal(t, "Running For Office", CapName("running-for-office"))
	require.Equal(t, "Meta", CapName("meta"))
	require.Equal(t, "Élan Vital", CapName("élan-vital"))
	require.Equal(t, "", CapName(""))
}
