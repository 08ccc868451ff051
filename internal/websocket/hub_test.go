package websocket

import (
	"context"
	"testing"
	"time"

	"gift-recommender-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(nil, "test", logger.NewNopLogger())
	go h.Run(ctx)
	return h, cancel
}

func TestHub_SendReachesEverySocketOfSession(t *testing.T) {
	h, cancel := startHub(t)
	defer cancel()

	a := &Client{SessionID: "s1", Send: make(chan []byte, 1)}
	b := &Client{SessionID: "s1", Send: make(chan []byte, 1)}
	other := &Client{SessionID: "s2", Send: make(chan []byte, 1)}
	require.True(t, h.attach(a))
	require.True(t, h.attach(b))
	require.True(t, h.attach(other))

	assert.Eventually(t, func() bool { return h.Count() == 3 }, time.Second, 5*time.Millisecond)

	h.Send(context.Background(), "s1", []byte("hi"))
	assert.Equal(t, []byte("hi"), <-a.Send)
	assert.Equal(t, []byte("hi"), <-b.Send)
	assert.Empty(t, other.Send)

	h.detach(a)
	assert.Eventually(t, func() bool { return h.Count() == 2 }, time.Second, 5*time.Millisecond)
	_, open := <-a.Send
	assert.False(t, open)
}

func TestHub_DropsSlowClient(t *testing.T) {
	h, cancel := startHub(t)
	defer cancel()

	slow := &Client{SessionID: "s1", Send: make(chan []byte)}
	require.True(t, h.attach(slow))
	assert.Eventually(t, func() bool { return h.Count() == 1 }, time.Second, 5*time.Millisecond)

	h.Send(context.Background(), "s1", []byte("hi"))

	assert.Equal(t, 0, h.Count())
	_, open := <-slow.Send
	assert.False(t, open)
}

func TestHub_StopsOnCancel(t *testing.T) {
	h, cancel := startHub(t)
	c := &Client{SessionID: "s1", Send: make(chan []byte, 1)}
	require.True(t, h.attach(c))

	cancel()
	_, open := <-c.Send
	assert.False(t, open)
	assert.False(t, h.attach(&Client{SessionID: "s2", Send: make(chan []byte, 1)}))
}
