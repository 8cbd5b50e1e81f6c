package memory

import (
	"context"
	"sync"

	"github.com/officetrack/officeday-backend-go/internal/domain/statistics"
)

// quarterConfigStoreImpl keeps the quarter configuration in process memory.
// Used when no database is configured; last write wins.
type quarterConfigStoreImpl struct {
	mu     sync.RWMutex
	config statistics.QuarterConfig
}

func NewQuarterConfigStore() statistics.QuarterConfigStore {
	return &quarterConfigStoreImpl{config: statistics.DefaultQuarterConfig()}
}

// Get implements statistics.QuarterConfigStore.
func (s *quarterConfigStoreImpl) Get(ctx context.Context) (statistics.QuarterConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Clone(), nil
}

// Set implements statistics.QuarterConfigStore.
func (s *quarterConfigStoreImpl) Set(ctx context.Context, config statistics.QuarterConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = config.Clone()
	return nil
}

// Reset implements statistics.QuarterConfigStore.
func (s *quarterConfigStoreImpl) Reset(ctx context.Context) (statistics.QuarterConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = statistics.DefaultQuarterConfig()
	return s.config.Clone(), nil
}
