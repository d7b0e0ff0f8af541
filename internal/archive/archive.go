// Package archive persists processed scan results as content-addressed
// snapshots, so a re-run over unchanged input can be compared against (or
// skipped in favor of) the previous result.
package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"attriscan/internal/model"
)

// Bump when the Snapshot layout changes; older snapshots become cache misses.
const snapshotSchema uint16 = 1

// Snapshot is one archived scan result.
type Snapshot struct {
	Schema    uint16
	CreatedAt time.Time
	Root      string
	Findings  []Record
}

// Record is the archived form of a LicenseFinding. The entity's fields are
// flattened into exported fields for the codec; Finding restores the value.
type Record struct {
	License    string
	Locations  []model.TextLocation
	Copyrights []model.CopyrightFinding
}

// RecordOf flattens a finding for archiving.
func RecordOf(f model.LicenseFinding) Record {
	return Record{License: f.License(), Locations: f.Locations(), Copyrights: f.Copyrights()}
}

// Finding restores the archived entity.
func (r Record) Finding() model.LicenseFinding {
	return model.NewLicenseFinding(r.License, r.Locations, r.Copyrights)
}

// NewSnapshot packs findings for root, stamped now.
func NewSnapshot(root string, findings []model.LicenseFinding) *Snapshot {
	records := make([]Record, len(findings))
	for i, f := range findings {
		records[i] = RecordOf(f)
	}
	return &Snapshot{Schema: snapshotSchema, CreatedAt: time.Now().UTC(), Root: root, Findings: records}
}

// Key addresses a snapshot by the scanned root and its canonical findings.
type Key [sha256.Size]byte

// KeyFor derives the content address from the canonical JSON of the
// findings, so identical results share one snapshot regardless of when they
// were produced.
func KeyFor(root string, findings []model.LicenseFinding) (Key, error) {
	h := sha256.New()
	h.Write([]byte(root))
	h.Write([]byte{0})
	enc := json.NewEncoder(h)
	for _, f := range findings {
		if err := enc.Encode(f); err != nil {
			return Key{}, err
		}
	}
	var k Key
	copy(k[:], h.Sum(nil))
	return k, nil
}

// Store keeps snapshots under one directory. Safe for concurrent use.
type Store struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes a snapshot store at dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) pathFor(key Key) string {
	return filepath.Join(s.dir, hex.EncodeToString(key[:])+".mp")
}

// Put writes a snapshot atomically: encode to a temp file, then rename.
func (s *Store) Put(key Key, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pathFor(key)
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		f.Close()
		os.Remove(f.Name())
	}()

	if err := msgpack.NewEncoder(f).Encode(snap); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get loads a snapshot; a missing file, an undecodable file or a schema
// mismatch all read as a miss.
func (s *Store) Get(key Key) (*Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.pathFor(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, false, nil
	}
	if snap.Schema != snapshotSchema {
		return nil, false, nil
	}
	return &snap, true, nil
}
