package history

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/paletta/internal/storage"
)

// StorageKey is the key the history is stored under.
const StorageKey = "saved-palettes"

// Store reads and writes the whole history as a JSON array of
// five-element hex arrays.
type Store struct {
	kv     storage.Store
	logger hclog.Logger
}

// NewStore binds a history store to kv. A nil logger discards output.
func NewStore(kv storage.Store, logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{kv: kv, logger: logger}
}

// Save replaces the stored history with h.
func (s *Store) Save(h History) error {
	if h == nil {
		h = History{}
	}
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := s.kv.Set(StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	s.logger.Debug("saved history", "palettes", len(h))
	return nil
}

// Load returns the stored history. An absent, unreadable or malformed value
// yields an empty history; the cause is logged rather than returned.
func (s *Store) Load() History {
	raw, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		s.logger.Warn("could not read saved history", "error", err)
		return History{}
	}
	if !ok {
		s.logger.Debug("no saved history")
		return History{}
	}

	h, err := Decode(raw)
	if err != nil {
		s.logger.Warn("ignoring malformed saved history", "error", err)
		return History{}
	}
	s.logger.Debug("loaded history", "palettes", len(h))
	return h
}

// Decode parses the stored text form of a history.
func Decode(raw string) (History, error) {
	var h History
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return nil, err
	}
	if h == nil {
		// JSON null.
		h = History{}
	}
	return h, nil
}
