package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const credentialsBucket = "credentials"

// boltProvider implements Provider backed by BoltDB.
type boltProvider struct {
	db *bolt.DB
}

// NewBoltProvider opens (or creates) the BoltDB file at path.
func NewBoltProvider(path string) (Provider, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create credentials directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(credentialsBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	return &boltProvider{db: db}, nil
}

func (b *boltProvider) Get() (string, error) {
	if b.db == nil {
		return "", ErrStorageClosed
	}

	var token string
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(credentialsBucket))
		if bucket == nil {
			return fmt.Errorf("credentials bucket missing")
		}
		// value is only valid inside the transaction
		token = string(bucket.Get([]byte(TokenKey)))
		return nil
	})
	return token, err
}

func (b *boltProvider) Set(token string) error {
	if b.db == nil {
		return ErrStorageClosed
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(credentialsBucket))
		if bucket == nil {
			return fmt.Errorf("credentials bucket missing")
		}
		return bucket.Put([]byte(TokenKey), []byte(token))
	})
}

func (b *boltProvider) Clear() error {
	if b.db == nil {
		return ErrStorageClosed
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(credentialsBucket))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(TokenKey))
	})
}

// Close closes the BoltDB file. Subsequent calls fail with ErrStorageClosed.
func (b *boltProvider) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}
