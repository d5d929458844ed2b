package database

import "errors"

// ErrSettingsNotFound is returned when a guild has no settings record.
// Callers decide whether to create a default or surface the miss.
var ErrSettingsNotFound = errors.New("guild settings not found")

// ErrMissingPuzzle is returned when an exact composite-key lookup finds
// no puzzle record. Callers either fall back to a round-agnostic search
// or report the miss to the user.
var ErrMissingPuzzle = errors.New("puzzle data not found")
