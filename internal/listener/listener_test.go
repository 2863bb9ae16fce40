package listener

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcastReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	ch1, cancel1 := hub.Subscribe()
	defer cancel1()
	ch2, cancel2 := hub.Subscribe()
	defer cancel2()

	event := ChangeEvent{Table: "players", Action: "update", ID: 10}
	hub.Broadcast(event)

	for _, ch := range []<-chan ChangeEvent{ch1, ch2} {
		select {
		case got := <-ch:
			assert.Equal(t, event, got)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe()
	cancel()

	// Broadcasting after cancel must not panic or deliver.
	hub.Broadcast(ChangeEvent{Table: "clubs", Action: "insert", ID: 1})

	_, open := <-ch
	assert.False(t, open)
}

func TestHubSkipsSlowSubscribers(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe()
	defer cancel()

	// Overflow the buffer; the extra events are dropped, not blocked on.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Broadcast(ChangeEvent{Table: "offers", Action: "update", ID: uint(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow subscriber")
	}

	// The buffered events are still there.
	require.NotEmpty(t, ch)
	first := <-ch
	assert.Equal(t, uint(0), first.ID)
}
