package hub

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesSubscribers(t *testing.T) {
	h := NewHub()
	a := h.Subscribe(1)
	b := h.Subscribe(1)

	require.NoError(t, h.Broadcast(Event{Type: GameDeleted, Payload: map[string]uint{"id": 3}}))

	for _, c := range []Client{a, b} {
		var got Event
		require.NoError(t, json.Unmarshal(<-c, &got))
		assert.Equal(t, GameDeleted, got.Type)
	}
}

func TestBroadcastSkipsFullClient(t *testing.T) {
	h := NewHub()
	c := h.Subscribe(1)

	require.NoError(t, h.Broadcast(Event{Type: GameCreated}))
	require.NoError(t, h.Broadcast(Event{Type: GameUpdated}))

	var got Event
	require.NoError(t, json.Unmarshal(<-c, &got))
	assert.Equal(t, GameCreated, got.Type)
	assert.Len(t, c, 0)
}

func TestUnsubscribeClosesClient(t *testing.T) {
	h := NewHub()
	c := h.Subscribe(0)
	assert.Equal(t, 1, h.Subscribers())

	h.Unsubscribe(c)
	h.Unsubscribe(c)

	_, open := <-c
	assert.False(t, open)
	assert.Zero(t, h.Subscribers())
}

func TestBroadcastRejectsUnencodablePayload(t *testing.T) {
	h := NewHub()
	assert.Error(t, h.Broadcast(Event{Type: GameCreated, Payload: make(chan int)}))
}
