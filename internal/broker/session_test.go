package broker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", StatusIdle.String())
	assert.Equal(t, "waiting", StatusWaiting.String())
	assert.Equal(t, "chatting", StatusChatting.String())
	assert.Equal(t, "idle", Status(42).String())
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusIdle, StatusIdle, true},
		{StatusIdle, StatusWaiting, true},
		{StatusIdle, StatusChatting, false},
		{StatusWaiting, StatusIdle, true},
		{StatusWaiting, StatusWaiting, true},
		{StatusWaiting, StatusChatting, true},
		{StatusChatting, StatusIdle, true},
		{StatusChatting, StatusWaiting, true},
		{StatusChatting, StatusChatting, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestQueueRemoveAndContains(t *testing.T) {
	var q waitQueue
	q.push("a")
	q.push("b")
	q.push("c")

	assert.True(t, q.contains("b"))
	q.remove("b")
	assert.False(t, q.contains("b"))
	assert.Equal(t, 2, q.len())

	q.remove("nope") // unknown ids are a no-op
	assert.Equal(t, 2, q.len())

	assert.Equal(t, "a", q.removeAt(0))
	assert.Equal(t, []string{"c"}, q.ids)
}
