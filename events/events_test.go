package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"piwkina-shop/store"
)

func TestPublishReachesEverySubscriber(t *testing.T) {
	hub := NewHub()
	a, cancelA := hub.Subscribe(1)
	b, cancelB := hub.Subscribe(1)
	defer cancelB()

	change := store.Change{Collection: store.Orders, Op: store.OpCreate, ID: "order_1"}
	hub.Publish(change)
	assert.Equal(t, change, <-a)
	assert.Equal(t, change, <-b)

	cancelA()
	cancelA()
	_, open := <-a
	assert.False(t, open)
	assert.Equal(t, 1, hub.Subscribers())
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe(1)
	defer cancel()

	hub.Publish(store.Change{ID: "1"})
	hub.Publish(store.Change{ID: "2"})
	assert.Equal(t, "1", (<-ch).ID)
	assert.Len(t, ch, 0)
}

func TestServeWSStreamsChanges(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, time.Second, 10*time.Millisecond)
	hub.Publish(store.Change{Collection: store.Products, Op: store.OpUpdate, ID: "prod_1"})

	var got store.Change
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "prod_1", got.ID)
	assert.Equal(t, store.OpUpdate, got.Op)

	conn.Close()
	require.Eventually(t, func() bool { return hub.Subscribers() == 0 }, time.Second, 10*time.Millisecond)
}

func TestServeWSChecksOrigin(t *testing.T) {
	hub := NewHub("https://piwkina.ge")
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, hub.Subscribers())

	for _, origin := range []string{"https://piwkina.ge", srv.URL} {
		conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": {origin}})
		require.NoError(t, err, origin)
		conn.Close()
	}
}

func TestWildcardOriginAllowsAny(t *testing.T) {
	hub := NewHub("*")
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), http.Header{"Origin": {"https://anywhere.example"}})
	require.NoError(t, err)
	conn.Close()
}
