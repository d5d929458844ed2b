package gdrive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArchiveSpreadsheetName(t *testing.T) {
	rename := ArchiveSpreadsheetName("LADDER DOG")
	require.Equal(t, "[SOLVED: LADDER DOG] A Puzzle", rename("A Puzzle"))

	// Renaming twice must not stack prefixes.
	require.Equal(t, "[SOLVED: LADDER DOG] A Puzzle", rename("[SOLVED: LADDER DOG] A Puzzle"))
}

func TestEscapeQuery(t *testing.T) {
	require.Equal(t, `Fool\'s Errand`, escapeQuery("Fool's Errand"))
}
