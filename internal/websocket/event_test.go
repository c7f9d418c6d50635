package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_CombinedType(t *testing.T) {
	event := NewEvent(EventTypeUpdated, EntityTypeProfile, nil)

	assert.Equal(t, "profile.updated", event.Type)
	assert.Equal(t, EntityTypeProfile, event.Entity)
	assert.False(t, event.Timestamp.IsZero())
}

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		wantType string
	}{
		{"profile created", ProfileCreated(nil), "profile.created"},
		{"profile updated", ProfileUpdated(nil), "profile.updated"},
		{"profile deleted", ProfileDeleted(nil), "profile.deleted"},
		{"budget recalculated", BudgetRecalculated(nil), "budget.recalculated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.event.Type)
		})
	}
}

func TestEvent_ToJSON(t *testing.T) {
	event := ProfileUpdated(map[string]string{"name": "Stuga i Dalarna"})

	data, err := event.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "profile.updated", decoded["type"])
	assert.Equal(t, "profile", decoded["entity"])

	payload, ok := decoded["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Stuga i Dalarna", payload["name"])
}
