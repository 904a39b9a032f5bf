package sessionstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-ChatbotService/internal/domain"
)

func TestMemoryStore_SaveGet(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	ctx := context.Background()
	session := domain.NewSession("user-1")
	session.State = domain.StateAwaitingDate
	session.Doctor = "Dr. Arun Mehta"

	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateAwaitingDate, got.State)
	assert.Equal(t, "Dr. Arun Mehta", got.Doctor)

	// Get возвращает копию: мутация результата не затрагивает хранилище
	got.Doctor = "changed"
	again, err := store.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Arun Mehta", again.Doctor)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	_, err := store.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	defer store.Stop()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.NewSession("user-1")))

	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	defer store.Stop()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.NewSession("user-1")))
	require.NoError(t, store.Delete(ctx, "user-1"))

	_, err := store.Get(ctx, "user-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// повторное удаление не ошибка
	assert.NoError(t, store.Delete(ctx, "user-1"))
}
