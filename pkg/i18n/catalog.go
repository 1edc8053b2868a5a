package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/default.yaml
var embeddedLocales embed.FS

const (
	// DefaultLocale is the locale of the built-in operator copy.
	DefaultLocale = "ru"

	KeyHeading       = "orderviewer.heading"
	KeyPlaceholder   = "orderviewer.placeholder"
	KeySubmit        = "orderviewer.submit"
	KeyResultHeading = "orderviewer.result_heading"
	KeyFetchError    = "orderviewer.error.fetch"
	KeyRequired      = "orderviewer.prompt.required"
)

// ErrMissingTranslation is returned when no locale in the fallback chain
// defines the key.
var ErrMissingTranslation = errors.New("i18n: missing translation")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale string, key string, args ...any) (string, error)
}

// Messages is the on-disk shape of a catalog: locale -> key -> message.
type Messages map[string]map[string]string

// Catalog is an in-memory Translator safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	messages Messages
	fallback string
}

// Ensure Catalog implements Translator.
var _ Translator = (*Catalog)(nil)

// NewCatalog returns an empty catalog falling back to fallbackLocale.
func NewCatalog(fallbackLocale string) *Catalog {
	fallbackLocale = normalizeLocale(fallbackLocale)
	if fallbackLocale == "" {
		fallbackLocale = DefaultLocale
	}
	return &Catalog{
		messages: make(Messages),
		fallback: fallbackLocale,
	}
}

// DefaultCatalog returns a catalog seeded with the built-in ru and en copy.
func DefaultCatalog() *Catalog {
	catalog := NewCatalog(DefaultLocale)
	data, err := embeddedLocales.ReadFile("locales/default.yaml")
	if err != nil {
		return catalog
	}
	messages, err := ParseMessages(data, "locales/default.yaml")
	if err != nil {
		return catalog
	}
	catalog.Add(messages)
	return catalog
}

// Add merges messages into the catalog, overriding existing keys.
func (c *Catalog) Add(messages Messages) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for locale, entries := range messages {
		locale = normalizeLocale(locale)
		if locale == "" {
			continue
		}
		target := c.messages[locale]
		if target == nil {
			target = make(map[string]string, len(entries))
			c.messages[locale] = target
		}
		for key, message := range entries {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			target[key] = message
		}
	}
}

// LoadFile merges a JSON or YAML catalog file into c.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("i18n: read catalog: %w", err)
	}
	messages, err := ParseMessages(data, path)
	if err != nil {
		return err
	}
	c.Add(messages)
	return nil
}

// Translate implements Translator. Arguments, when present, are applied to
// the message with fmt.Sprintf.
func (c *Catalog) Translate(locale string, key string, args ...any) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrMissingTranslation
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range localeChain(locale, c.fallback) {
		entries, ok := c.messages[candidate]
		if !ok {
			continue
		}
		message, ok := entries[key]
		if !ok || strings.TrimSpace(message) == "" {
			continue
		}
		if len(args) > 0 {
			return fmt.Sprintf(message, args...), nil
		}
		return message, nil
	}
	return "", fmt.Errorf("%w: %s (%s)", ErrMissingTranslation, key, locale)
}

// ParseMessages decodes a catalog payload, trying JSON first and YAML second.
func ParseMessages(data []byte, source string) (Messages, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("i18n: catalog %s is empty", source)
	}

	var messages Messages
	if err := json.Unmarshal(data, &messages); err == nil {
		return messages, nil
	}

	messages = nil
	if err := yaml.Unmarshal(data, &messages); err == nil {
		return messages, nil
	}

	return nil, fmt.Errorf("i18n: parse %s: invalid JSON or YAML", source)
}

// Translate resolves key through t, returning fallback (or the key itself)
// when t is nil or has no message.
func Translate(t Translator, locale, key, fallback string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t != nil {
		result, err := t.Translate(locale, key)
		if err == nil && strings.TrimSpace(result) != "" {
			return result
		}
	}

	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

func localeChain(locale, fallback string) []string {
	locale = normalizeLocale(locale)
	chain := make([]string, 0, 3)
	seen := make(map[string]struct{}, 3)
	add := func(candidate string) {
		if candidate == "" {
			return
		}
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}
		chain = append(chain, candidate)
	}

	add(locale)
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		add(locale[:idx])
	}
	add(fallback)
	return chain
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}
