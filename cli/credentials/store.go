/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.etcd.io/bbolt"
)

const BucketSession = "Session"

// ErrNoToken is returned by Load when nothing is stored for a server
var ErrNoToken = errors.New("no token stored")

// Store keeps one token per server URL
type Store interface {
	Load(server string) (string, error)
	Save(server, token string) error
	Delete(server string) error
	Close() error
}

// MemoryStore is a Store that lasts as long as the process
type MemoryStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]string)}
}

func (m *MemoryStore) Load(server string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	token, ok := m.tokens[server]
	if !ok {
		return "", ErrNoToken
	}
	return token, nil
}

func (m *MemoryStore) Save(server, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[server] = token
	return nil
}

func (m *MemoryStore) Delete(server string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, server)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}

// FileStore is a Store backed by a Bolt database so that a login survives
// between invocations
type FileStore struct {
	db *bbolt.DB
}

// OpenFile opens (or creates) the store at path. Bolt waits up to one second
// if another process holds the file.
func OpenFile(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists([]byte(BucketSession))
		if createErr != nil {
			return fmt.Errorf("failed to create bucket %s: %w", BucketSession, createErr)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &FileStore{db: db}, nil
}

func (f *FileStore) Load(server string) (string, error) {
	var token string
	err := f.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketSession))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketSession)
		}
		v := b.Get([]byte(server))
		if v == nil {
			return ErrNoToken
		}
		token = string(v)
		return nil
	})
	return token, err
}

func (f *FileStore) Save(server, token string) error {
	return f.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketSession))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketSession)
		}
		return b.Put([]byte(server), []byte(token))
	})
}

func (f *FileStore) Delete(server string) error {
	return f.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketSession))
		if b == nil {
			return fmt.Errorf("bucket %s not found", BucketSession)
		}
		return b.Delete([]byte(server))
	})
}

func (f *FileStore) Close() error {
	return f.db.Close()
}
