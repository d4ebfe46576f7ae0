package converter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/scroller-tech/go-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityConverter_RoundTrip(t *testing.T) {
	conv := NewActivityConverterImpl()
	ts := time.Date(2026, 3, 1, 9, 30, 0, 123456000, time.UTC)

	activity := domain.NewUserActivity()
	activity.Viewed["A"] = domain.ViewInteraction{Timestamp: ts, TimeSpent: 6.5}
	activity.Liked["B"] = domain.Interaction{Timestamp: ts}
	activity.Clicked["C"] = domain.Interaction{Timestamp: ts}
	activity.AddedToCart["D"] = domain.Interaction{Timestamp: ts}

	restored, err := conv.ToEntity(conv.ToRedisModel(activity))
	require.NoError(t, err)

	assert.Equal(t, activity.Viewed, restored.Viewed)
	assert.Equal(t, activity.Liked, restored.Liked)
	assert.Equal(t, activity.Clicked, restored.Clicked)
	assert.Equal(t, activity.AddedToCart, restored.AddedToCart)
}

// Имена полей закреплены историческим форматом ключей: смена тега
// молча потеряет накопленные журналы пользователей.
func TestActivityRedisModel_WireFormat(t *testing.T) {
	model := &ActivityRedisModel{
		Viewed: map[string]ViewRedisModel{"A": {Timestamp: "2026-03-01T09:30:00Z", TimeSpent: 6.5}},
		Liked:  map[string]InteractionRedisModel{"B": {Timestamp: "2026-03-01T09:30:00Z"}},
	}

	raw, err := json.Marshal(model)
	require.NoError(t, err)

	payload := string(raw)
	assert.Contains(t, payload, `"viewed_item_keys"`)
	assert.Contains(t, payload, `"liked_item_keys"`)
	assert.Contains(t, payload, `"clicked_item_keys"`)
	assert.Contains(t, payload, `"added_to_cart"`)
	assert.Contains(t, payload, `"time_spent":6.5`)
}

func TestActivityConverter_BadTimestamp(t *testing.T) {
	conv := NewActivityConverterImpl()

	_, err := conv.ToEntity(&ActivityRedisModel{
		Liked: map[string]InteractionRedisModel{"A": {Timestamp: "yesterday"}},
	})
	require.Error(t, err)
}
