// Package prefs holds a visitor's simple durable preferences: theme,
// language, and analytics consent. Values persist in Redis; the language is
// additionally mirrored into a server-readable cookie by the handler layer.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Consent is the analytics-consent flag.
type Consent string

const (
	ConsentGranted Consent = "granted"
	ConsentDenied  Consent = "denied"
	ConsentUnset   Consent = ""
)

// Preferences are a visitor's durable choices.
type Preferences struct {
	Theme    string  `json:"theme"`
	Language string  `json:"language"`
	Consent  Consent `json:"consent"`
}

func defaults() *Preferences {
	return &Preferences{Theme: "light", Language: "en", Consent: ConsentUnset}
}

// Service reads and writes visitor preferences.
type Service interface {
	Get(ctx context.Context, visitorID string) (*Preferences, error)
	SetTheme(ctx context.Context, visitorID, theme string) (*Preferences, error)
	SetLanguage(ctx context.Context, visitorID, language string) (*Preferences, error)
	SetConsent(ctx context.Context, visitorID string, consent Consent) (*Preferences, error)
}

const prefsKeyPrefix = "prefs:"

// RedisPrefsService implements Service on Redis.
type RedisPrefsService struct {
	Client *redis.Client
}

// NewRedisPrefsService creates a preferences service backed by the given client.
func NewRedisPrefsService(client *redis.Client) Service {
	return &RedisPrefsService{Client: client}
}

func (s *RedisPrefsService) load(ctx context.Context, visitorID string) (*Preferences, error) {
	data, err := s.Client.Get(ctx, prefsKeyPrefix+visitorID).Result()
	if err == redis.Nil {
		return defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences for %s: %w", visitorID, err)
	}

	var p Preferences
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences for %s: %w", visitorID, err)
	}
	return &p, nil
}

func (s *RedisPrefsService) save(ctx context.Context, visitorID string, p *Preferences) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences for %s: %w", visitorID, err)
	}
	// Preferences are durable; no TTL.
	if err := s.Client.Set(ctx, prefsKeyPrefix+visitorID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save preferences for %s: %w", visitorID, err)
	}
	return nil
}

func (s *RedisPrefsService) mutate(ctx context.Context, visitorID string, fn func(*Preferences)) (*Preferences, error) {
	p, err := s.load(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	fn(p)
	if err := s.save(ctx, visitorID, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns the visitor's preferences, defaults when none are stored.
func (s *RedisPrefsService) Get(ctx context.Context, visitorID string) (*Preferences, error) {
	return s.load(ctx, visitorID)
}

// SetTheme stores the theme choice.
func (s *RedisPrefsService) SetTheme(ctx context.Context, visitorID, theme string) (*Preferences, error) {
	return s.mutate(ctx, visitorID, func(p *Preferences) { p.Theme = theme })
}

// SetLanguage stores the language choice.
func (s *RedisPrefsService) SetLanguage(ctx context.Context, visitorID, language string) (*Preferences, error) {
	return s.mutate(ctx, visitorID, func(p *Preferences) { p.Language = language })
}

// SetConsent stores the analytics-consent flag.
func (s *RedisPrefsService) SetConsent(ctx context.Context, visitorID string, consent Consent) (*Preferences, error) {
	return s.mutate(ctx, visitorID, func(p *Preferences) { p.Consent = consent })
}
