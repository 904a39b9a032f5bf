package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
)

const keyPrefix = "chatbot:session:"

// RedisStore хранилище сессий в Redis. Сессии сериализуются в JSON,
// TTL поддерживается самим Redis.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает хранилище поверх готового клиента Redis
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get возвращает сессию или ErrNotFound, если её нет или она истекла
func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sessionstore: redis get: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("sessionstore: unmarshal session %s: %w", id, err)
	}

	return &session, nil
}

// Save сохраняет сессию и продлевает её TTL
func (s *RedisStore) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("sessionstore: marshal session %s: %w", session.ID, err)
	}

	if err := s.client.Set(ctx, keyPrefix+session.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("sessionstore: redis set: %w", err)
	}

	return nil
}

// Delete удаляет сессию. Отсутствие сессии не считается ошибкой.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("sessionstore: redis del: %w", err)
	}

	return nil
}
