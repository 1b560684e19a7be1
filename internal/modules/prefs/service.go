// Package prefs holds the site-wide theme preference: read once at
// startup, written through to the settings table on every change, with
// in-process subscribers notified of updates.
package prefs

import (
	"context"
	"errors"
	"sync"

	"mentorloop/internal/domain"

	"gorm.io/gorm"
)

const themeKey = "site_theme"

var ErrInvalidTheme = errors.New("theme must be light, dark or system")

// SettingsStore is the slice of the settings repository used here.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Subscriber receives the new theme after a successful write-through.
type Subscriber func(theme string)

type Service struct {
	mu          sync.RWMutex
	store       SettingsStore
	current     string
	subscribers []Subscriber
}

// NewService loads the persisted theme, falling back to the configured
// default when no row exists yet. A read failure also falls back: a
// missing preference must not block startup.
func NewService(ctx context.Context, store SettingsStore, fallback string) *Service {
	if !domain.ValidTheme(fallback) {
		fallback = domain.ThemeSystem
	}

	current := fallback
	if v, err := store.Get(ctx, themeKey); err == nil && domain.ValidTheme(v) {
		current = v
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		current = fallback
	}

	return &Service{store: store, current: current}
}

func (s *Service) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe registers a callback for future changes.
func (s *Service) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Set validates, writes through to storage, then updates the in-memory
// value and notifies subscribers. A failed write leaves the current
// value untouched.
func (s *Service) Set(ctx context.Context, theme string) error {
	if !domain.ValidTheme(theme) {
		return ErrInvalidTheme
	}

	if err := s.store.Set(ctx, themeKey, theme); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = theme
	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(theme)
	}
	return nil
}
