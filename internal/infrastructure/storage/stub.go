package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	galleryapp "github.com/safe/backend/internal/application/gallery"
)

// Ensure StubObjectStorage implements ObjectStorage
var _ galleryapp.ObjectStorage = (*StubObjectStorage)(nil)

// StubObjectStorage is an in-memory stand-in for development and tests.
// URLs it issues point nowhere; it only tracks which keys were "uploaded".
type StubObjectStorage struct {
	// BaseURL is the base URL for generated upload/download URLs.
	// Defaults to "https://storage.example.com" if not set.
	BaseURL string

	mu   sync.Mutex
	keys map[string]struct{}
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		keys:    make(map[string]struct{}),
	}
}

// GenerateUploadURL returns a stub upload URL and records the key
func (s *StubObjectStorage) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}

	s.mu.Lock()
	s.keys[storageKey] = struct{}{}
	s.mu.Unlock()

	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/upload/" + storageKey, expiresAt, nil
}

// GenerateDownloadURL returns a stub download URL
func (s *StubObjectStorage) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}

	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/" + storageKey, expiresAt, nil
}

// DeleteObject forgets a recorded key
func (s *StubObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}

	s.mu.Lock()
	delete(s.keys, storageKey)
	s.mu.Unlock()
	return nil
}

// ObjectExists reports whether the key was recorded
func (s *StubObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}

	s.mu.Lock()
	_, ok := s.keys[storageKey]
	s.mu.Unlock()
	return ok, nil
}
