package cache

import (
	"context"
	"sync"
	"time"

	"github.com/room-search-microservice/internal/domain/repository"
)

// Clock возвращает текущее время; подменяется в тестах
type Clock func() time.Time

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// Memory - процессный кеш с TTL. Истекшие записи удаляются при чтении
// и, если задан интервал, фоновой очисткой.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     Clock
	stop    chan struct{}
	once    sync.Once
}

var _ repository.CacheRepository = (*Memory)(nil)

// NewMemory создает кеш в памяти. sweepInterval <= 0 отключает фоновую очистку.
func NewMemory(sweepInterval time.Duration, now Clock) *Memory {
	if now == nil {
		now = time.Now
	}
	m := &Memory{
		entries: make(map[string]memoryEntry),
		now:     now,
		stop:    make(chan struct{}),
	}

	if sweepInterval > 0 {
		go m.sweepLoop(sweepInterval)
	}

	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	if !m.now().Before(entry.expiresAt) {
		m.mu.Lock()
		// Запись могла быть перезаписана между блокировками
		if current, ok := m.entries[key]; ok && !m.now().Before(current.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, nil
	}

	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	m.entries[key] = memoryEntry{value: stored, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Ping(context.Context) error {
	return nil
}

// Len возвращает число записей, включая еще не удаленные истекшие
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close останавливает фоновую очистку
func (m *Memory) Close() {
	m.once.Do(func() { close(m.stop) })
}

func (m *Memory) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanExpired()
		case <-m.stop:
			return
		}
	}
}

func (m *Memory) cleanExpired() {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, key)
		}
	}
}
