package plugin

import (
	"context"
	"sync"

	"github.com/bnema/linkpeek/internal/application/port"
	"github.com/bnema/linkpeek/internal/domain/repository"
)

// PluginID keys this plugin's data in the host store.
const PluginID = "linkpeek"

// RepositoryDataStore adapts a PluginDataRepository to the host data API
// for a single plugin.
type RepositoryDataStore struct {
	repo     repository.PluginDataRepository
	pluginID string
}

var _ port.PluginDataStore = (*RepositoryDataStore)(nil)

// NewRepositoryDataStore creates a store for pluginID.
func NewRepositoryDataStore(repo repository.PluginDataRepository, pluginID string) *RepositoryDataStore {
	return &RepositoryDataStore{repo: repo, pluginID: pluginID}
}

func (s *RepositoryDataStore) LoadData(ctx context.Context) ([]byte, error) {
	return s.repo.Load(ctx, s.pluginID)
}

func (s *RepositoryDataStore) SaveData(ctx context.Context, data []byte) error {
	return s.repo.Save(ctx, s.pluginID, data)
}

// MemoryDataStore keeps the blob in memory.
type MemoryDataStore struct {
	mu   sync.Mutex
	data []byte
}

var _ port.PluginDataStore = (*MemoryDataStore)(nil)

func (s *MemoryDataStore) LoadData(context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]byte(nil), s.data...), nil
}

func (s *MemoryDataStore) SaveData(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}
