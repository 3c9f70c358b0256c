package ingest

import (
	"encoding/json"
	"fmt"
	"io"
)

// Source holds the three decoded input collections for one load pass.
type Source struct {
	Teams   []TeamRecord
	Players []PlayerRecord
	Games   []GameRecord
}

// ReadSource decodes the three JSON collections from their byte streams.
// A nil reader means that collection is absent and loads as empty; the core
// deliberately takes readers, not file paths, so callers own deployment
// concerns like filesystem layout.
func ReadSource(teams, players, games io.Reader) (Source, error) {
	var src Source
	if teams != nil {
		if err := json.NewDecoder(teams).Decode(&src.Teams); err != nil {
			return Source{}, fmt.Errorf("decode teams collection: %w", err)
		}
	}
	if players != nil {
		if err := json.NewDecoder(players).Decode(&src.Players); err != nil {
			return Source{}, fmt.Errorf("decode players collection: %w", err)
		}
	}
	if games != nil {
		if err := json.NewDecoder(games).Decode(&src.Games); err != nil {
			return Source{}, fmt.Errorf("decode games collection: %w", err)
		}
	}
	return src, nil
}
