package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
)

// интервал фоновой чистки истекших сессий
const janitorInterval = time.Minute

type memoryEntry struct {
	session   domain.Session
	expiresAt time.Time
}

// MemoryStore потокобезопасное хранилище сессий в памяти процесса.
// Истекшие записи отсеиваются при чтении и периодически удаляются
// фоновой горутиной.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	ttl   time.Duration
	stop  chan struct{}
}

// NewMemoryStore создает хранилище и запускает фоновую чистку.
// По завершении работы нужно вызвать Stop.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		items: make(map[string]memoryEntry),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}

	go s.janitor()

	return s
}

// Get возвращает копию сессии или ErrNotFound, если её нет или она истекла
func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	entry, ok := s.items[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrNotFound
	}

	session := entry.session
	return &session, nil
}

// Save сохраняет копию сессии и продлевает её TTL
func (s *MemoryStore) Save(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	s.items[session.ID] = memoryEntry{
		session:   *session,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	return nil
}

// Delete удаляет сессию. Отсутствие сессии не считается ошибкой.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()

	return nil
}

// Stop останавливает фоновую чистку
func (s *MemoryStore) Stop() {
	close(s.stop)
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryStore) evictExpired() {
	now := time.Now()

	s.mu.Lock()
	for id, entry := range s.items {
		if now.After(entry.expiresAt) {
			delete(s.items, id)
		}
	}
	s.mu.Unlock()
}
