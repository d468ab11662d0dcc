package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRoutingKey(t *testing.T) {
	event := NewEvent(ItemCreatedEvent, EventVersionV1, nil, Headers{})

	assert.Equal(t, "item.created.v1", event.GetRoutingKey())
}

func TestEventEnvelopeRoundTrip(t *testing.T) {
	headers := Headers{
		TraceID:       GenerateTraceID(),
		CorrelationID: GenerateCorrelationID(),
	}
	event := NewEvent(ItemDeletedEvent, EventVersionV1, ItemDeletedPayload{
		ID:      "item-1",
		OwnerID: "user-1",
	}, headers)

	raw, err := event.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "item.deleted", decoded["event"])
	assert.Equal(t, "v1", decoded["version"])
	assert.Equal(t, headers.TraceID, decoded["traceId"])
	assert.Equal(t, headers.CorrelationID, decoded["correlationId"])
}
