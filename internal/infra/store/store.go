package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Store is a small string key-value store for settings. Implementations
// must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

const ConfigKey = "qm_config"

// AppConfig is the admin-managed configuration. Only CatalogURL and
// UploadEndpointURL are used by the quoting flow; the reference links are
// kept for the admin screens.
type AppConfig struct {
	CatalogURL             string `json:"catalogUrl"`
	UsersReferenceURL      string `json:"usersReferenceUrl"`
	QuotationsReferenceURL string `json:"quotationsReferenceUrl"`
	UploadEndpointURL      string `json:"uploadEndpointUrl"`
	LastUpdated            string `json:"lastUpdated"`
}

// LoadConfig reads the stored configuration. Persistence is best effort: a
// missing, unreadable or corrupt entry yields the empty config and is only
// logged.
func LoadConfig(ctx context.Context, s Store) AppConfig {
	var cfg AppConfig
	raw, ok, err := s.Get(ctx, ConfigKey)
	if err != nil {
		log.Printf("store: load config: %v", err)
		return cfg
	}
	if !ok {
		return cfg
	}
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		log.Printf("store: decode config: %v", err)
		return AppConfig{}
	}
	return cfg
}

// SaveConfig stamps LastUpdated and writes the configuration.
func SaveConfig(ctx context.Context, s Store, cfg AppConfig, now time.Time) (AppConfig, error) {
	cfg.LastUpdated = now.UTC().Format(time.RFC3339)
	raw, err := json.Marshal(cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, s.Set(ctx, ConfigKey, string(raw))
}

// Memory is the in-process fallback used when no database is configured.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
