package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chesskit/internal/game"
)

// Storage keys
const (
	gamePrefix = "game:"
	keyStats   = "stats"
)

// ErrGameNotFound reports that no archived game has the requested id.
var ErrGameNotFound = errors.New("game not found")

// GameInfo summarizes one archived game without replaying it.
type GameInfo struct {
	ID      string
	Created time.Time
	Moves   int
}

// ArchiveStats tracks totals across the whole archive.
type ArchiveStats struct {
	GamesStored int       `json:"games_stored"`
	MovesStored int       `json:"moves_stored"`
	LastSaved   time.Time `json:"last_saved"`
}

// Storage wraps BadgerDB for the game archive.
type Storage struct {
	db *badger.DB
}

// New opens the archive in dir, creating it if needed.
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(gamePrefix + id)
}

// SaveGame archives the game's move log under id, replacing any
// previous record with that id, and updates the archive statistics.
func (s *Storage) SaveGame(id string, g *game.Game) error {
	record, err := g.Record(2)
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("game %q has no board to save", id)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	key := gameKey(id)

	return s.db.Update(func(txn *badger.Txn) error {
		stats, err := readStats(txn)
		if err != nil {
			return err
		}

		item, err := txn.Get(key)
		switch {
		case err == badger.ErrKeyNotFound:
			stats.GamesStored++
		case err != nil:
			return err
		default:
			prev, err := parseItem(item)
			if err != nil {
				return err
			}
			stats.MovesStored -= len(prev.Log)
		}

		stats.MovesStored += len(record.Log)
		stats.LastSaved = time.Now()

		if err := writeStats(txn, stats); err != nil {
			return err
		}

		return txn.Set(key, data)
	})
}

// LoadGame rebuilds the archived game by replaying its stored log.
func (s *Storage) LoadGame(id string) (*game.Game, error) {
	var g *game.Game

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %q", ErrGameNotFound, id)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			g, err = game.ParseRecord(val)
			return err
		})
	})

	return g, err
}

// ListGames summarizes every archived game in id order.
func (s *Storage) ListGames() ([]GameInfo, error) {
	var games []GameInfo

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gamePrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			record, err := parseItem(item)
			if err != nil {
				return err
			}

			games = append(games, GameInfo{
				ID:      string(item.Key()[len(gamePrefix):]),
				Created: record.Created,
				Moves:   len(record.Log),
			})
		}
		return nil
	})

	return games, err
}

// DeleteGame removes the archived game and updates the statistics.
func (s *Storage) DeleteGame(id string) error {
	key := gameKey(id)

	return s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %q", ErrGameNotFound, id)
		}
		if err != nil {
			return err
		}

		prev, err := parseItem(item)
		if err != nil {
			return err
		}

		stats, err := readStats(txn)
		if err != nil {
			return err
		}

		stats.GamesStored--
		stats.MovesStored -= len(prev.Log)

		if err := writeStats(txn, stats); err != nil {
			return err
		}

		return txn.Delete(key)
	})
}

// Stats loads the archive statistics, returning zero totals for a
// fresh archive.
func (s *Storage) Stats() (*ArchiveStats, error) {
	var stats *ArchiveStats

	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		stats, err = readStats(txn)
		return err
	})

	return stats, err
}

func parseItem(item *badger.Item) (*game.Record, error) {
	var record game.Record

	err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &record)
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func readStats(txn *badger.Txn) (*ArchiveStats, error) {
	stats := &ArchiveStats{}

	item, err := txn.Get([]byte(keyStats))
	if err == badger.ErrKeyNotFound {
		return stats, nil // Fresh archive
	}
	if err != nil {
		return nil, err
	}

	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func writeStats(txn *badger.Txn, stats *ArchiveStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return txn.Set([]byte(keyStats), data)
}
