package snapshot

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrSchemaMismatch is returned when a stored payload was written by an
// incompatible version of the encoder.
var ErrSchemaMismatch = errors.New("snapshot schema mismatch")

// Encode serializes a payload.
func Encode(p *Payload) ([]byte, error) {
	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(p); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode deserializes a payload and rejects incompatible schemas.
func Decode(data []byte) (*Payload, error) {
	var p Payload
	if err := msgpack.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if p.Schema != schemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, p.Schema, schemaVersion)
	}
	return &p, nil
}

// Cache stores payloads on disk keyed by content digest.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// OpenCache initializes a cache rooted at dir, creating it if needed.
func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Store writes a payload under its content hash. The write is atomic, a
// concurrent Load sees either the old payload or the new one.
func (c *Cache) Store(p *Payload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := Encode(p)
	if err != nil {
		return err
	}

	path := c.pathFor(p.ContentHash)
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// Load reads the payload stored for key. It reports a miss when nothing is
// stored, when the schema does not match, or when the stored payload's
// content hash disagrees with the key.
func (c *Cache) Load(key Digest) (*Payload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	p, err := Decode(data)
	if err != nil {
		if errors.Is(err, ErrSchemaMismatch) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if p.ContentHash != key {
		return nil, false, nil
	}
	return p, true, nil
}

// Drop removes every stored payload.
func (c *Cache) Drop() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".mp" {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
