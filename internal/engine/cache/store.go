package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// cacheFileExtension is the file extension used for cache entries.
const cacheFileExtension = ".json"

// Common cache errors.
var (
	ErrCacheNotFound   = errors.New("cache entry not found")
	ErrCacheExpired    = errors.New("cache entry expired")
	ErrInvalidCacheKey = errors.New("cache key cannot be empty")
	ErrInvalidTTL      = errors.New("cache TTL must be positive")
)

// FileStore provides file-based caching with TTL expiration.
// Safe for concurrent use within one process.
type FileStore struct {
	directory string
	ttl       time.Duration
	mu        sync.RWMutex
}

// NewFileStore creates a store in directory, creating it if needed.
func NewFileStore(directory string, ttl time.Duration) (*FileStore, error) {
	if directory == "" {
		return nil, errors.New("cache directory cannot be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTTL, ttl)
	}

	if err := os.MkdirAll(directory, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &FileStore{directory: directory, ttl: ttl}, nil
}

// Get returns the suggestions stored under key.
// Returns ErrCacheNotFound if the entry doesn't exist and ErrCacheExpired if
// it has expired; expired entries are removed.
func (s *FileStore) Get(key string) ([]string, error) {
	if key == "" {
		return nil, ErrInvalidCacheKey
	}

	filePath := s.keyToFilePath(key)

	s.mu.RLock()
	entry, err := readEntry(filePath)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	if entry.IsExpired() {
		s.mu.Lock()
		_ = os.Remove(filePath)
		s.mu.Unlock()
		return nil, ErrCacheExpired
	}

	return entry.Suggestions, nil
}

// Set stores suggestions under key, replacing any existing entry.
func (s *FileStore) Set(key string, suggestions []string) error {
	if key == "" {
		return ErrInvalidCacheKey
	}

	entryData, err := json.MarshalIndent(NewEntry(key, suggestions, s.ttl), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filePath := s.keyToFilePath(key)

	// Write to a temporary file first, then rename for atomicity.
	tempPath := filePath + ".tmp"
	if writeErr := os.WriteFile(tempPath, entryData, 0o600); writeErr != nil {
		return fmt.Errorf("failed to write cache file: %w", writeErr)
	}

	if renameErr := os.Rename(tempPath, filePath); renameErr != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename cache file: %w", renameErr)
	}

	return nil
}

// Clear removes all cache entries from the store.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeEntries(func(string) bool { return true })
}

// CleanupExpired removes expired and unreadable entries.
func (s *FileStore) CleanupExpired() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeEntries(func(path string) bool {
		entry, err := readEntry(path)
		return err != nil || entry.IsExpired()
	})
}

// Count returns the number of cache entries, including expired ones.
func (s *FileStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files, err := s.entryFiles()
	if err != nil {
		return 0, err
	}
	return len(files), nil
}

// Directory returns the cache directory path.
func (s *FileStore) Directory() string {
	return s.directory
}

// TTL returns the lifetime given to new entries.
func (s *FileStore) TTL() time.Duration {
	return s.ttl
}

func (s *FileStore) removeEntries(match func(path string) bool) error {
	files, err := s.entryFiles()
	if err != nil {
		return err
	}
	for _, path := range files {
		if !match(path) {
			continue
		}
		if removeErr := os.Remove(path); removeErr != nil && !os.IsNotExist(removeErr) {
			return fmt.Errorf("failed to remove cache file %s: %w", filepath.Base(path), removeErr)
		}
	}
	return nil
}

func (s *FileStore) entryFiles() ([]string, error) {
	entries, err := os.ReadDir(s.directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == cacheFileExtension {
			files = append(files, filepath.Join(s.directory, entry.Name()))
		}
	}
	return files, nil
}

func readEntry(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheNotFound
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var entry Entry
	if unmarshalErr := json.Unmarshal(data, &entry); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", unmarshalErr)
	}
	return &entry, nil
}

// keyToFilePath converts a key to a file path. Keys are hex digests from
// Key, so no sanitizing is needed beyond keeping the name local.
func (s *FileStore) keyToFilePath(key string) string {
	return filepath.Join(s.directory, filepath.Base(key)+cacheFileExtension)
}
