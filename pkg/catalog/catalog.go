// Package catalog implements the CSV-backed product catalog store.
package catalog

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/google/renameio/v2"

	"github.com/moodshop/moodshop/pkg/domain"
)

// csv columns: product_id, name, price, image_url, mood_tags
var header = []string{"product_id", "name", "price", "image_url", "mood_tags"}

// Store holds the catalog and rewrites the backing CSV in full on mutation.
// Single-writer discipline: all access goes through the mutex.
type Store struct {
	path string

	mu    sync.RWMutex
	items []domain.Item
}

// NewStore creates a catalog store backed by the given CSV file
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the catalog from disk. A missing or unreadable file is not an
// error: the store falls back to the seed catalog and tries to persist it.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.readFile()
	if err != nil {
		log.Printf("[WARN] can't load catalog from %s, seeding sample products: %v", s.path, err)
		s.items = seedItems()
		if persistErr := s.persistLocked(); persistErr != nil {
			log.Printf("[WARN] can't persist seed catalog: %v", persistErr)
		}
		return
	}

	s.items = items
	log.Printf("[INFO] loaded %d products from %s", len(items), s.path)
}

// GetByID returns the item with the given id, linear scan
func (s *Store) GetByID(id int64) (domain.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.Item{}, false
}

// Search returns all items whose name or mood tags contain the query,
// case-insensitive. No ranking.
func (s *Store) Search(query string) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var res []domain.Item
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.JoinTags()), q) {
			res = append(res, item)
		}
	}
	return res
}

// Add validates the item, appends it and rewrites the backing file.
// Validation failures return domain.ErrValidation wrapped with a reason.
func (s *Store) Add(item domain.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
	}
	if len(item.MoodTags) == 0 {
		return fmt.Errorf("%w: mood_tags are required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.ID == item.ID {
			return fmt.Errorf("%w: product id %d already exists", domain.ErrValidation, item.ID)
		}
	}

	s.items = append(s.items, item)
	if err := s.persistLocked(); err != nil {
		// keep the in-memory append, storage will catch up on the next write
		log.Printf("[WARN] can't persist catalog after add: %v", err)
	}
	return nil
}

// All returns a copy of the full catalog
func (s *Store) All() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]domain.Item, len(s.items))
	copy(res, s.items)
	return res
}

// Size returns the number of items in the catalog
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// readFile parses the backing CSV, skipping malformed rows
func (s *Store) readFile() ([]domain.Item, error) {
	f, err := os.Open(s.path) //nolint:gosec // path comes from config
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // validate per row instead
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog file is empty")
	}

	items := make([]domain.Item, 0, len(rows)-1)
	for i, row := range rows[1:] { // skip header
		item, err := parseRow(row)
		if err != nil {
			log.Printf("[WARN] skipping malformed catalog row %d: %v", i+2, err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func parseRow(row []string) (domain.Item, error) {
	if len(row) != len(header) {
		return domain.Item{}, fmt.Errorf("expected %d columns, got %d", len(header), len(row))
	}

	id, err := strconv.ParseInt(strings.TrimSpace(row[0]), 10, 64)
	if err != nil {
		return domain.Item{}, fmt.Errorf("parse product_id %q: %w", row[0], err)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return domain.Item{}, fmt.Errorf("parse price %q: %w", row[2], err)
	}

	return domain.Item{
		ID:       id,
		Name:     row[1],
		Price:    price,
		ImageURL: row[3],
		MoodTags: domain.SplitTags(row[4]),
	}, nil
}

// persistLocked rewrites the backing CSV atomically, caller holds the lock
func (s *Store) persistLocked() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("create catalog dir: %w", err)
		}
	}

	// renameio handles temp file creation, fsync and atomic rename, so a
	// crash mid-write can't corrupt the existing catalog
	pending, err := renameio.NewPendingFile(s.path)
	if err != nil {
		return fmt.Errorf("create pending catalog file: %w", err)
	}
	defer pending.Cleanup() //nolint:errcheck // cleanup is a no-op after replace

	writer := csv.NewWriter(pending)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write catalog header: %w", err)
	}
	for _, item := range s.items {
		row := []string{
			strconv.FormatInt(item.ID, 10),
			item.Name,
			strconv.FormatFloat(item.Price, 'f', -1, 64),
			item.ImageURL,
			item.JoinTags(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write catalog row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush catalog rows: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace catalog file: %w", err)
	}
	return nil
}
