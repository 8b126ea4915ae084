// Package export turns the event log into its outbound representations:
// CSV for the local file download and rows for the remote sink batch.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fieldside/scorekeeper/internal/models"
)

// timeLayout is how event timestamps appear in exports
const timeLayout = "2006-01-02 15:04:05"

// maxFilenameLen caps the sanitized match identifier portion of filenames
const maxFilenameLen = 64

// header is the CSV header row
var header = []string{"GameID", "Time", "Event", "Team", "Score", "Assist"}

// Row is one exported event
type Row struct {
	// GameID is the match identifier stored on the event
	GameID string

	// Time is the event timestamp, formatted for display
	Time string

	// EventType is the fixed label for the event kind; empty for scores
	EventType string

	// Team is the team name the event is attributed to, or empty
	Team string

	// Score is the scorer's name (Score events only)
	Score string

	// Assist is the assistor's name or sentinel (Score events only)
	Assist string
}

// KindLabel returns the fixed export label for an event kind. Score events
// carry no label; their scorer and assist columns identify them.
func KindLabel(kind models.EventKind) string {
	switch kind {
	case models.EventKindTimeout:
		return "TimeOut"
	case models.EventKindHalftime:
		return "HalfTime"
	case models.EventKindStoppage:
		return "Stoppage"
	case models.EventKindMatchStart:
		return "Start"
	default:
		return ""
	}
}

// Rows builds export rows for the log in insertion order. Team names
// resolve the event's side at export time.
func Rows(events []models.Event, teamA, teamB string) []Row {
	rows := make([]Row, 0, len(events))
	for _, e := range events {
		team := ""
		switch e.TeamSide {
		case models.TeamSideA:
			team = teamA
		case models.TeamSideB:
			team = teamB
		}

		rows = append(rows, Row{
			GameID:    e.MatchID,
			Time:      e.Timestamp.Format(timeLayout),
			EventType: KindLabel(e.Kind),
			Team:      team,
			Score:     e.Scorer,
			Assist:    e.Assistor,
		})
	}
	return rows
}

// WriteCSV writes the header plus one row per event. encoding/csv handles
// quoting of delimiters, quotes, and newlines inside fields.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{row.GameID, row.Time, row.EventType, row.Team, row.Score, row.Assist}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename derives a safe CSV filename from the match identifier:
// filesystem-unsafe characters become underscores and the result is
// length-capped.
func Filename(matchID string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == ' ':
			return r
		default:
			return '_'
		}
	}, matchID)

	safe = strings.TrimSpace(safe)
	if safe == "" {
		safe = "match"
	}
	if len(safe) > maxFilenameLen {
		safe = safe[:maxFilenameLen]
	}

	return safe + ".csv"
}

// Write produces the local export file in dir and returns its path.
func Write(dir string, matchID string, events []models.Event, teamA, teamB string) (string, error) {
	if dir == "" {
		return "", errors.New("export directory cannot be empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, Filename(matchID))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, Rows(events, teamA, teamB)); err != nil {
		return "", err
	}

	return path, nil
}
