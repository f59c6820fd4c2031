// Package store persists the last-entered calculator inputs as raw strings.
package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rpgo/safeharbor/internal/domain"
)

// KeyPrefix namespaces every key written by this application
const KeyPrefix = "safeharbor."

// Input keys
const (
	KeyFilingStatus      = KeyPrefix + "filingStatus"
	KeyPriorYearTax      = KeyPrefix + "priorYearTax"
	KeyPriorYearAGI      = KeyPrefix + "priorYearAGI"
	KeyCurrentYearProfit = KeyPrefix + "currentYearProfit"
)

// ErrKeyNotFound is returned when saved inputs are requested but none exist
var ErrKeyNotFound = errors.New("key not found")

// Store is a string key-value store
type Store interface {
	Load(key string) (string, bool, error)
	Save(key, value string) error
	// SaveAll writes every pair in a single update
	SaveAll(values map[string]string) error
	// Clear removes every key starting with prefix
	Clear(prefix string) error
}

// MemoryStore keeps values in process memory
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Load(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Save(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) SaveAll(values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.values[k] = v
	}
	return nil
}

func (m *MemoryStore) Clear(prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clearPrefix(m.values, prefix)
	return nil
}

// Keys returns the stored keys in sorted order
func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return sortedKeys(m.values)
}

func clearPrefix(values map[string]string, prefix string) {
	for k := range values {
		if strings.HasPrefix(k, prefix) {
			delete(values, k)
		}
	}
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SaveInputs writes all four raw inputs as one batch
func SaveInputs(s Store, raw domain.RawInputs) error {
	err := s.SaveAll(map[string]string{
		KeyFilingStatus:      raw.FilingStatus,
		KeyPriorYearTax:      raw.PriorYearTax,
		KeyPriorYearAGI:      raw.PriorYearAGI,
		KeyCurrentYearProfit: raw.CurrentYearProfit,
	})
	if err != nil {
		return fmt.Errorf("failed to save inputs: %w", err)
	}
	return nil
}

// LoadRawInputs reads back the saved strings. ErrKeyNotFound is returned when
// nothing has been saved; individually missing amounts load as empty strings.
func LoadRawInputs(s Store) (domain.RawInputs, error) {
	var raw domain.RawInputs
	found := false
	fields := []struct {
		key string
		dst *string
	}{
		{KeyFilingStatus, &raw.FilingStatus},
		{KeyPriorYearTax, &raw.PriorYearTax},
		{KeyPriorYearAGI, &raw.PriorYearAGI},
		{KeyCurrentYearProfit, &raw.CurrentYearProfit},
	}
	for _, f := range fields {
		v, ok, err := s.Load(f.key)
		if err != nil {
			return domain.RawInputs{}, fmt.Errorf("failed to load %s: %w", f.key, err)
		}
		if ok {
			*f.dst = v
			found = true
		}
	}
	if !found {
		return domain.RawInputs{}, ErrKeyNotFound
	}
	return raw, nil
}

// LoadInputs reads the saved strings and parses them into TaxInputs
func LoadInputs(s Store) (domain.TaxInputs, error) {
	raw, err := LoadRawInputs(s)
	if err != nil {
		return domain.TaxInputs{}, err
	}
	return raw.Parse()
}

// ClearInputs removes everything this application saved
func ClearInputs(s Store) error {
	return s.Clear(KeyPrefix)
}
