package roster

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fieldside/scorekeeper/internal/models"
)

// Parse decodes a provider response body into a roster mapping, choosing
// the parser from the declared content type with a payload sniff as the
// fallback hint.
func Parse(body []byte, contentType string) (models.Roster, error) {
	if isJSONContent(contentType, body) {
		return parseJSON(body)
	}
	return parseTabular(body)
}

// parseJSON handles the `{ teamName: [playerName, ...], ... }` shape
func parseJSON(body []byte) (models.Roster, error) {
	var teams models.Roster
	if err := json.Unmarshal(body, &teams); err != nil {
		return nil, fmt.Errorf("failed to parse roster JSON: %w", err)
	}
	return teams, nil
}

// parseTabular handles delimited text where the first row holds team names
// as column headers and subsequent rows hold player names per column.
// Blank cells are ignored. Tab wins as delimiter when present, otherwise
// comma.
func parseTabular(body []byte) (models.Roster, error) {
	text := strings.ReplaceAll(string(body), "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("roster table has no header row")
	}

	delim := ","
	if strings.Contains(lines[0], "\t") {
		delim = "\t"
	}

	headers := strings.Split(lines[0], delim)
	teams := make(models.Roster)
	names := make([]string, len(headers))
	for i, h := range headers {
		name := strings.TrimSpace(h)
		names[i] = name
		if name != "" {
			teams[name] = []string{}
		}
	}

	for _, line := range lines[1:] {
		cells := strings.Split(line, delim)
		for i, cell := range cells {
			if i >= len(names) || names[i] == "" {
				continue
			}
			player := strings.TrimSpace(cell)
			if player == "" {
				continue
			}
			teams[names[i]] = append(teams[names[i]], player)
		}
	}

	if len(teams) == 0 {
		return nil, fmt.Errorf("roster table has no team columns")
	}

	return teams, nil
}
