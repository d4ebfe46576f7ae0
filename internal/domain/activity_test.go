package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignalKind(t *testing.T) {
	for _, valid := range []string{"viewed", "liked", "clicked", "added_to_cart"} {
		kind, ok := ParseSignalKind(valid)
		require.True(t, ok, valid)
		assert.Equal(t, SignalKind(valid), kind)
	}

	for _, invalid := range []string{"", "purchased", "VIEWED", "cart"} {
		_, ok := ParseSignalKind(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestUserActivity_InteractedAsins(t *testing.T) {
	now := time.Now()

	activity := NewUserActivity()
	activity.Viewed["A"] = ViewInteraction{Timestamp: now, TimeSpent: 3}
	activity.Liked["B"] = Interaction{Timestamp: now}
	activity.Clicked["B"] = Interaction{Timestamp: now}
	activity.AddedToCart["C"] = Interaction{Timestamp: now}

	seen := activity.InteractedAsins()
	assert.Len(t, seen, 3)
	assert.Contains(t, seen, "A")
	assert.Contains(t, seen, "B")
	assert.Contains(t, seen, "C")
}

func TestUserActivity_IsEmpty(t *testing.T) {
	activity := NewUserActivity()
	assert.True(t, activity.IsEmpty())

	activity.Liked["A"] = Interaction{Timestamp: time.Now()}
	assert.False(t, activity.IsEmpty())
}
