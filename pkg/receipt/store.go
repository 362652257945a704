package receipt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultFileName = ".near-pay-receipts.json"

// Store persists receipts in a single JSON file
type Store struct {
	filePath string
	now      func() time.Time

	mu       sync.RWMutex
	receipts map[string]*Receipt
}

type document struct {
	Receipts map[string]*Receipt `json:"receipts"`
}

// NewStore opens the receipt file at filePath, or ~/.near-pay-receipts.json
// when filePath is empty. A missing file is created on first save.
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		filePath = filepath.Join(home, DefaultFileName)
	}

	s := &Store{
		filePath: filePath,
		now:      time.Now,
		receipts: make(map[string]*Receipt),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load receipts: %w", err)
	}

	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal receipts: %w", err)
	}
	if doc.Receipts != nil {
		s.receipts = doc.Receipts
	}
	return nil
}

// writeLocked must be called with s.mu held
func (s *Store) writeLocked() error {
	data, err := json.MarshalIndent(document{Receipts: s.receipts}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal receipts: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write to temporary file first, then rename for atomic write
	tmp := s.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write receipts: %w", err)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Save stores r, assigning an ID and creation time when they are unset
func (s *Store) Save(r *Receipt) error {
	if r == nil {
		return fmt.Errorf("receipt is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now().UTC()
	}

	copied := *r
	s.receipts[r.ID] = &copied

	return s.writeLocked()
}

// Get retrieves a receipt by ID
func (s *Store) Get(id string) (*Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.receipts[id]
	if !ok {
		return nil, fmt.Errorf("receipt '%s' not found", id)
	}
	copied := *r
	return &copied, nil
}

// List returns all receipts, newest first
func (s *Store) List() []*Receipt {
	return s.filter(func(*Receipt) bool { return true })
}

// ListByStatus returns receipts with the given status, newest first
func (s *Store) ListByStatus(status Status) []*Receipt {
	return s.filter(func(r *Receipt) bool { return r.Status == status })
}

func (s *Store) filter(keep func(*Receipt) bool) []*Receipt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Receipt, 0, len(s.receipts))
	for _, r := range s.receipts {
		if keep(r) {
			copied := *r
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Count returns the number of stored receipts
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.receipts)
}

// FilePath returns the backing file path
func (s *Store) FilePath() string {
	return s.filePath
}
