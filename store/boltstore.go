package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/bitfsorg/ecopayout-go/contract"
)

var (
	bucketContract = []byte("contract")
	keyConfig      = []byte("config")
)

// BoltStore persists the contract state in a bbolt database.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("store: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketContract); err != nil {
			return fmt.Errorf("boltstore: create bucket %q: %w", bucketContract, err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// Load decodes the stored record.
func (s *BoltStore) Load() (*contract.State, error) {
	var state contract.State
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketContract).Get(keyConfig)
		if data == nil {
			return ErrNotFound
		}
		if err := decodeGob(data, &state); err != nil {
			return fmt.Errorf("boltstore: decode state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return &state, nil
}

// Save overwrites the record in a single update transaction.
func (s *BoltStore) Save(state *contract.State) error {
	if err := checkState(state); err != nil {
		return err
	}

	data, err := encodeGob(state)
	if err != nil {
		return fmt.Errorf("boltstore: encode state: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketContract).Put(keyConfig, data); err != nil {
			return fmt.Errorf("boltstore: put state: %w", err)
		}
		return nil
	})
}

// encodeGob serializes a value using gob encoding.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob deserializes gob-encoded data into a value.
func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
