// Package storage persists batch-analysis output keyed by material hash
// key. The in-process material cache is never serialized; this store only
// holds what the analysis tool chooses to keep.
package storage

import (
	"encoding/binary"
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
)

// Record is the persisted shape of a computed material record.
type Record struct {
	FEN         string   `json:"fen"`
	Variant     string   `json:"variant"`
	Value       int      `json:"value"`
	GamePhase   int      `json:"game_phase"`
	Factor      [2]uint8 `json:"factor"`
	Specialized bool     `json:"specialized"`
	Score       int      `json:"score"`
}

// Store wraps BadgerDB for persistent analysis records.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store at the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put saves a record under its material key. A later Put for the same key
// overwrites: records depend only on the material configuration, so the
// newest one is as good as any.
func (s *Store) Put(key uint64, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(storeKey(key), data)
	})
}

// Get loads the record for a material key; found is false when none exists.
func (s *Store) Get(key uint64) (rec Record, found bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(storeKey(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})

	return rec, found, err
}

func storeKey(key uint64) []byte {
	buf := make([]byte, 12)
	copy(buf, "mat:")
	binary.BigEndian.PutUint64(buf[4:], key)
	return buf
}
