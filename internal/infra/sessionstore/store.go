package sessionstore

import (
	"context"
	"errors"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
)

// ErrNotFound возвращается, когда сессия отсутствует или истекла
var ErrNotFound = errors.New("sessionstore: session not found")

// Store хранилище сессий диалога с TTL. Истекшая сессия неотличима
// от отсутствующей: Get возвращает ErrNotFound, и диалог начинается
// заново с чистого состояния.
type Store interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id string) error
}
