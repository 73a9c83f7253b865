package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/b-paul/chess-engine/internal/board"
)

const keyPrefix = "pos/"

// Record is the cached generation result for one position.
type Record struct {
	FEN         string    `json:"fen"`
	Quiet       []string  `json:"quiet"`
	Noisy       []string  `json:"noisy"`
	GeneratedAt time.Time `json:"generated_at"`
}

// NewRecord generates both move classes for pos and renders them in UCI.
func NewRecord(pos *board.Position) *Record {
	return &Record{
		FEN:         pos.FEN(),
		Quiet:       uciList(pos.GenerateQuiet()),
		Noisy:       uciList(pos.GenerateNoisy()),
		GeneratedAt: time.Now(),
	}
}

func uciList(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// Store wraps BadgerDB for the move cache.
type Store struct {
	db *badger.DB
}

// Open opens or creates the cache in dir. An empty dir selects GetCacheDir.
func Open(dir string) (*Store, error) {
	if dir == "" {
		var err error
		if dir, err = GetCacheDir(); err != nil {
			return nil, err
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a cache that lives only as long as the process.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory cache: %w", err)
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

func key(hash uint64) []byte {
	return fmt.Appendf(nil, "%s%016x", keyPrefix, hash)
}

// Get loads the record stored under hash. ok is false on a miss.
func (s *Store) Get(hash uint64) (rec *Record, ok bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(hash))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		rec = &Record{}
		ok = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, false, fmt.Errorf("get %016x: %w", hash, err)
	}
	return rec, ok, nil
}

// Put stores rec under hash, replacing any earlier record.
func (s *Store) Put(hash uint64, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("put %016x: %w", hash, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(hash), data)
	})
	if err != nil {
		return fmt.Errorf("put %016x: %w", hash, err)
	}
	return nil
}

// Len counts the cached positions.
func (s *Store) Len() (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}
