package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Схема полезной нагрузки; поднимать при изменении формата.
const diskCacheSchemaVersion uint16 = 2

// DiskCache stores per-file check outcomes keyed by source content
// hash, so `check` skips re-lexing, re-terminating and re-parsing
// unchanged files. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores one file's cached front-end outcome. Only the
// facts the hit path reports are kept; потоки токенов не храним —
// чистый файл заново не разбирается, а грязный не кэшируется вовсе.
type DiskPayload struct {
	Schema uint16

	// Termination reflects the gate the outcome was produced under; a
	// payload cached with the pass off must not serve a run with it on.
	Termination bool

	// Clean is true when the file produced no errors.
	Clean      bool
	Insertions int
}

// newPayload builds the cached shape of one checked file.
func newPayload(termination, clean bool, insertions int) *DiskPayload {
	return &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Termination: termination,
		Clean:       clean,
		Insertions:  insertions,
	}
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location (XDG_CACHE_HOME or ~/.cache).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt returns a cache rooted at an explicit directory.
// Нужен тестам и флагу --cache-dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte, termination bool) string {
	hexKey := hex.EncodeToString(key[:])
	suffix := "t1"
	if !termination {
		suffix = "t0"
	}
	// Подкаталог "checks" — для удобства читаемости/очистки.
	return filepath.Join(c.dir, "checks", hexKey+"-"+suffix+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key [32]byte, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key, payload.Termination)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	// Атомарная замена
	return os.Rename(tmpName, p)
}

// Get reads a payload from the disk cache. Несовпадение схемы читается
// как промах, не как ошибка.
func (c *DiskCache) Get(key [32]byte, termination bool, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key, termination)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion || out.Termination != termination {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}
