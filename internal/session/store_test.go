package session_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parley-labs/parley/internal/session"
	"github.com/parley-labs/parley/pkg/models"
)

func TestStart_FreshIDs(t *testing.T) {
	store := session.NewStore()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := store.Start()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "id %q issued twice", id)
		seen[id] = true
	}
}

func TestHistory_UnknownSessionIsEmpty(t *testing.T) {
	store := session.NewStore()

	history := store.History("never-seen")
	assert.Empty(t, history)
}

func TestAppend_PreservesOrder(t *testing.T) {
	store := session.NewStore()
	id := store.Start()

	store.Append(id, models.Message{Role: models.RoleUser, Content: "hi"})
	store.Append(id, models.Message{Role: models.RoleAssistant, Content: "hello"})
	store.Append(id, models.Message{Role: models.RoleUser, Content: "how are you?"})

	history := store.History(id)
	require.Len(t, history, 3)
	assert.Equal(t, "hi", history[0].Content)
	assert.Equal(t, "hello", history[1].Content)
	assert.Equal(t, "how are you?", history[2].Content)
}

func TestAppend_LazySessionCreation(t *testing.T) {
	store := session.NewStore()

	store.Append("implicit", models.Message{Role: models.RoleUser, Content: "hi"})

	history := store.History("implicit")
	require.Len(t, history, 1)
	assert.Equal(t, "hi", history[0].Content)
}

func TestAppend_TrimsToLimitKeepingMostRecent(t *testing.T) {
	store := session.NewStore()
	id := store.Start()

	total := session.HistoryLimit + 15
	for i := 0; i < total; i++ {
		store.Append(id, models.Message{Role: models.RoleUser, Content: fmt.Sprintf("msg %d", i)})
	}

	history := store.History(id)
	require.Len(t, history, session.HistoryLimit)
	assert.Equal(t, fmt.Sprintf("msg %d", total-session.HistoryLimit), history[0].Content)
	assert.Equal(t, fmt.Sprintf("msg %d", total-1), history[len(history)-1].Content)
}

func TestReset_ReplacesHistory(t *testing.T) {
	store := session.NewStore()
	id := store.Start()

	store.Append(id, models.Message{Role: models.RoleUser, Content: "old"})
	store.Reset(id, []models.Message{
		{Role: models.RoleUser, Content: "new"},
	})

	history := store.History(id)
	require.Len(t, history, 1)
	assert.Equal(t, "new", history[0].Content)
}

func TestReset_IsolatesCallerSlice(t *testing.T) {
	store := session.NewStore()
	id := store.Start()

	seed := []models.Message{{Role: models.RoleUser, Content: "seed"}}
	store.Reset(id, seed)
	seed[0].Content = "mutated"

	history := store.History(id)
	require.Len(t, history, 1)
	assert.Equal(t, "seed", history[0].Content)
}

func TestHistory_ReturnsCopy(t *testing.T) {
	store := session.NewStore()
	id := store.Start()
	store.Append(id, models.Message{Role: models.RoleUser, Content: "original"})

	history := store.History(id)
	history[0].Content = "mutated"

	fresh := store.History(id)
	require.Len(t, fresh, 1)
	assert.Equal(t, "original", fresh[0].Content)
}

func TestSessions_AreIndependent(t *testing.T) {
	store := session.NewStore()
	a := store.Start()
	b := store.Start()

	store.Append(a, models.Message{Role: models.RoleUser, Content: "for a"})

	assert.Len(t, store.History(a), 1)
	assert.Empty(t, store.History(b))
}
