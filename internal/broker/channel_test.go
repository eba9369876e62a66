package broker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thecorner/backend/internal/models"
)

func TestStreamChannelPreservesOrder(t *testing.T) {
	ch := NewStreamChannel(4)
	require.True(t, ch.Send(models.Event{Type: models.EventConnected}))
	require.True(t, ch.Send(models.Event{Type: models.EventStatus}))
	require.True(t, ch.Send(models.Event{Type: models.EventOnline}))

	assert.Equal(t, models.EventConnected, (<-ch.Events()).Type)
	assert.Equal(t, models.EventStatus, (<-ch.Events()).Type)
	assert.Equal(t, models.EventOnline, (<-ch.Events()).Type)
}

func TestStreamChannelDropsWhenFull(t *testing.T) {
	ch := NewStreamChannel(1)
	assert.True(t, ch.Send(models.Event{Type: models.EventStatus}))
	assert.False(t, ch.Send(models.Event{Type: models.EventTyping}), "full buffer drops")

	// The earlier event survives the drop.
	assert.Equal(t, models.EventStatus, (<-ch.Events()).Type)
	assert.True(t, ch.Send(models.Event{Type: models.EventOnline}))
}

func TestStreamChannelCloseIsIdempotent(t *testing.T) {
	ch := NewStreamChannel(4)
	ch.Close()
	ch.Close()

	select {
	case <-ch.Done():
	default:
		t.Fatal("Done not closed after Close")
	}
	assert.False(t, ch.Send(models.Event{Type: models.EventStatus}))
}
