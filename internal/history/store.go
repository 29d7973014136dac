package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Store handles persistence of prompt build records
type Store struct {
	historyDir string
}

// NewStore creates a new history store
func NewStore(historyDir string) (*Store, error) {
	recordsDir := filepath.Join(historyDir, "records")
	if err := os.MkdirAll(recordsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	return &Store{historyDir: historyDir}, nil
}

// Add assigns the record an ID and creation time, persists it, and marks
// it as the latest build
func (s *Store) Add(rec *Record) error {
	rec.ID = uuid.New().String()[:8]
	rec.CreatedAt = time.Now()

	if err := s.Save(rec); err != nil {
		return err
	}

	return s.SetLatest(rec.ID)
}

// Save persists a record to disk
func (s *Store) Save(rec *Record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := os.WriteFile(s.recordPath(rec.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write record file: %w", err)
	}

	return nil
}

// Load reads a record from disk
func (s *Store) Load(id string) (*Record, error) {
	data, err := os.ReadFile(s.recordPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("record %s not found", id)
		}
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &rec, nil
}

// Delete removes a record from disk
func (s *Store) Delete(id string) error {
	if err := os.Remove(s.recordPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete record file: %w", err)
	}

	// Clear the latest pointer if it referenced this record
	latestID, _ := s.LatestID()
	if latestID == id {
		_ = s.ClearLatest()
	}

	return nil
}

// List returns all records sorted by creation time (newest first)
func (s *Store) List() ([]*Record, error) {
	recordsDir := filepath.Join(s.historyDir, "records")
	entries, err := os.ReadDir(recordsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read records directory: %w", err)
	}

	var records []*Record
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		id := entry.Name()[:len(entry.Name())-5] // Remove .json
		rec, err := s.Load(id)
		if err != nil {
			continue // Skip corrupted files
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	return records, nil
}

// Purge removes every record and the latest pointer
func (s *Store) Purge() error {
	records, err := s.List()
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := s.Delete(rec.ID); err != nil {
			return err
		}
	}
	if err := s.ClearLatest(); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SetLatest marks id as the most recent build
func (s *Store) SetLatest(id string) error {
	latestPath := filepath.Join(s.historyDir, "latest.json")
	data, err := json.Marshal(map[string]string{"record_id": id})
	if err != nil {
		return err
	}
	return os.WriteFile(latestPath, data, 0644)
}

// LatestID returns the ID of the most recent build
func (s *Store) LatestID() (string, error) {
	latestPath := filepath.Join(s.historyDir, "latest.json")
	data, err := os.ReadFile(latestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	var latest map[string]string
	if err := json.Unmarshal(data, &latest); err != nil {
		return "", err
	}

	return latest["record_id"], nil
}

// Latest returns the most recent record
func (s *Store) Latest() (*Record, error) {
	id, err := s.LatestID()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}
	return s.Load(id)
}

// ClearLatest removes the latest pointer
func (s *Store) ClearLatest() error {
	return os.Remove(filepath.Join(s.historyDir, "latest.json"))
}

// recordPath returns the file path for a record
func (s *Store) recordPath(id string) string {
	return filepath.Join(s.historyDir, "records", id+".json")
}
