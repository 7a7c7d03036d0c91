package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/tradewinds/internal/engine"
	"github.com/tatianab/tradewinds/internal/models"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func startServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	srv := New(nil, 0, WithRandSource(func() engine.Rand { return fixedRand(0.5) }))

	ctx, cancel := context.WithCancel(context.Background())
	go srv.Hub().Run(ctx)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		cancel()
	})
	return srv, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, frame ClientFrame) ServerFrame {
	t.Helper()
	require.NoError(t, conn.WriteJSON(frame))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var reply ServerFrame
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestHealthz(t *testing.T) {
	_, ts := startServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func TestSessionOverWebsocket(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts)

	reply := roundTrip(t, conn, ClientFrame{Type: FrameInit, Captain: "Vela", Ship: "Kestrel"})
	require.Equal(t, FrameLines, reply.Type)
	require.NotNil(t, reply.Status)
	assert.NotEmpty(t, reply.Session)
	assert.Equal(t, "Vela", reply.Status.Player)
	assert.Equal(t, 1000, reply.Status.Credits)
	assert.Equal(t, "Earth Station", reply.Status.Location)
	assert.True(t, models.HasStyle(reply.Lines, models.StyleLocation))

	session := reply.Session
	reply = roundTrip(t, conn, ClientFrame{Type: FrameCommand, Text: "buy food"})
	assert.Equal(t, session, reply.Session)
	assert.Equal(t, 990, reply.Status.Credits)
	assert.Equal(t, 1, reply.Status.Cargo)
	require.NotEmpty(t, reply.Lines)
	assert.Equal(t, models.StyleSuccess, reply.Lines[0].Style)

	reply = roundTrip(t, conn, ClientFrame{Type: FrameCommand, Text: "travel to mars"})
	assert.Equal(t, "New Olympia - Mars Colony", reply.Status.Location)
	assert.Equal(t, 978, reply.Status.Credits)
}

func TestSessionErrors(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts)

	reply := roundTrip(t, conn, ClientFrame{Type: FrameCommand, Text: "market"})
	assert.Equal(t, FrameError, reply.Type)
	assert.Contains(t, reply.Error, "init")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	var bad ServerFrame
	require.NoError(t, conn.ReadJSON(&bad))
	assert.Equal(t, "malformed frame", bad.Error)

	reply = roundTrip(t, conn, ClientFrame{Type: "dance"})
	assert.Equal(t, FrameError, reply.Type)

	roundTrip(t, conn, ClientFrame{Type: FrameInit})
	reply = roundTrip(t, conn, ClientFrame{Type: FrameInit})
	assert.Equal(t, "session already started", reply.Error)
}

func TestSessionsAreIndependent(t *testing.T) {
	srv, ts := startServer(t)
	a := dial(t, ts)
	b := dial(t, ts)

	ra := roundTrip(t, a, ClientFrame{Type: FrameInit, Captain: "A"})
	rb := roundTrip(t, b, ClientFrame{Type: FrameInit, Captain: "B"})
	assert.NotEqual(t, ra.Session, rb.Session)

	roundTrip(t, a, ClientFrame{Type: FrameCommand, Text: "buy water"})
	reply := roundTrip(t, b, ClientFrame{Type: FrameCommand, Text: "status"})
	assert.Equal(t, 1000, reply.Status.Credits)
	assert.Equal(t, "B", reply.Status.Player)

	assert.Eventually(t, func() bool { return srv.Hub().Active() == 2 }, time.Second, 10*time.Millisecond)
}

func TestStatusFrameJSON(t *testing.T) {
	_, ts := startServer(t)
	conn := dial(t, ts)

	require.NoError(t, conn.WriteJSON(ClientFrame{Type: FrameInit}))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"style":"title"`)
	assert.Contains(t, string(raw), `"credits":1000`)
}
