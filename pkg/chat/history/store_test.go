package history

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestStore() *Store {
	return NewStore(NewMemoryKV(), nopLogger{})
}

func TestAddMessageCapsAtFifty(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	for i := 0; i < 60; i++ {
		store.AddMessage(ctx, "user-1", RoleUser, fmt.Sprintf("message %d", i), nil)
	}

	messages := store.Load(ctx, "user-1")
	require.Len(t, messages, MaxMessages)

	// The oldest ten were evicted; the rest keep their relative order.
	assert.Equal(t, "message 10", messages[0].Text)
	assert.Equal(t, "message 59", messages[len(messages)-1].Text)
	for i := 1; i < len(messages); i++ {
		assert.False(t, messages[i].CreatedAt.Before(messages[i-1].CreatedAt))
	}
}

func TestAddMessageDerivesFlags(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	bot := store.AddMessage(ctx, "user-1", RoleBot, "Try this recipe", nil)
	assert.True(t, bot.IsRecipe)

	user := store.AddMessage(ctx, "user-1", RoleUser, "Give me a recipe", nil)
	assert.False(t, user.IsRecipe)

	suggestions := store.AddMessage(ctx, "user-1", RoleBot, "Shopping list:\n- 2 cups flour", nil)
	require.Len(t, suggestions.SuggestedItems, 1)
	assert.Equal(t, "flour", suggestions.SuggestedItems[0].Name)
}

func TestRecentRecipes(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	for i := 0; i < 8; i++ {
		store.AddMessage(ctx, "user-1", RoleBot, fmt.Sprintf("recipe number %d", i), nil)
		store.AddMessage(ctx, "user-1", RoleBot, "nothing interesting here", nil)
		store.AddMessage(ctx, "user-1", RoleUser, "recipe please", nil)
	}

	recipes := store.RecentRecipes(ctx, "user-1")
	require.Len(t, recipes, RecentRecipeLimit)

	// Most recent first, bot recipe messages only.
	assert.Equal(t, "recipe number 7", recipes[0].Text)
	assert.Equal(t, "recipe number 3", recipes[4].Text)
	for _, msg := range recipes {
		assert.Equal(t, RoleBot, msg.Role)
		assert.True(t, msg.IsRecipe)
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	store := NewStore(kv, nopLogger{})

	first := store.AddMessage(ctx, "user-1", RoleUser, "hello", nil)
	second := store.AddMessage(ctx, "user-1", RoleBot, "a recipe for you", nil)

	reloaded := NewStore(kv, nopLogger{}).Load(ctx, "user-1")
	require.Len(t, reloaded, 2)

	assert.Equal(t, first.Id, reloaded[0].Id)
	assert.Equal(t, first.Role, reloaded[0].Role)
	assert.Equal(t, first.Text, reloaded[0].Text)
	assert.Equal(t, first.IsRecipe, reloaded[0].IsRecipe)
	assert.WithinDuration(t, first.CreatedAt, reloaded[0].CreatedAt, time.Second)

	assert.Equal(t, second.Id, reloaded[1].Id)
	assert.True(t, reloaded[1].IsRecipe)
}

func TestClearThenLoadYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	store.AddMessage(ctx, "user-1", RoleUser, "hello", nil)
	require.NoError(t, store.Clear(ctx, "user-1"))

	assert.Empty(t, store.Load(ctx, "user-1"))
}

func TestClearIsScopedPerUser(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	store.AddMessage(ctx, "user-1", RoleUser, "hello", nil)
	store.AddMessage(ctx, "user-2", RoleUser, "hi there", nil)

	require.NoError(t, store.Clear(ctx, "user-1"))

	assert.Empty(t, store.Load(ctx, "user-1"))
	assert.Len(t, store.Load(ctx, "user-2"), 1)
}

type failingKV struct {
	getErr    error
	setErr    error
	deleteErr error
}

func (f *failingKV) Get(ctx context.Context, key string) ([]byte, error)        { return nil, f.getErr }
func (f *failingKV) Set(ctx context.Context, key string, value []byte) error    { return f.setErr }
func (f *failingKV) Delete(ctx context.Context, key string) error               { return f.deleteErr }

func TestBackendFailuresDegradeSoftly(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{
		getErr:    errors.New("read failed"),
		setErr:    errors.New("write failed"),
		deleteErr: errors.New("delete failed"),
	}
	store := NewStore(kv, nopLogger{})

	// Load and AddMessage never surface backend errors.
	assert.Empty(t, store.Load(ctx, "user-1"))
	msg := store.AddMessage(ctx, "user-1", RoleUser, "hello", nil)
	assert.Equal(t, "hello", msg.Text)

	// Clear does.
	assert.Error(t, store.Clear(ctx, "user-1"))
}

func TestLoadMalformedRecordYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(ctx, storageKey("user-1"), []byte("{not json")))

	store := NewStore(kv, nopLogger{})
	assert.Empty(t, store.Load(ctx, "user-1"))
}
