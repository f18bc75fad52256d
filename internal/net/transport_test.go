package net

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"SketchBoard/internal/state"
)

func snapshot(t *testing.T, rev uint64, n int) state.Change {
	t.Helper()
	strokes := make([]state.Stroke, n)
	for i := range strokes {
		strokes[i] = state.NewStroke(state.Style{Color: "#000", Thickness: 2, Opacity: 1}, false,
			state.SubPath{{X: float64(i), Y: 0}}, "M0,0 L0,0")
	}
	return state.Change{Revision: rev, Paths: strokes}
}

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(100, 50)
	go h.Run(ctx)
	srv := httptest.NewServer(h.Handler())
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return h, srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func TestPublishNeverBlocks(t *testing.T) {
	h := NewHub(10, 10)
	for i := 1; i <= 100; i++ {
		h.Publish(snapshot(t, uint64(i), 0))
	}
	require.Len(t, h.updates, 1)
	require.Equal(t, uint64(100), (<-h.updates).Revision)
}

func TestWatchReceivesSnapshots(t *testing.T) {
	h, srv := startHub(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	msgs := make(chan Message, 16)
	errc := make(chan error, 1)
	go func() { errc <- Watch(ctx, wsURL(srv), func(m Message) { msgs <- m }) }()

	first := <-msgs
	require.Equal(t, MessagePaths, first.Type)
	require.Equal(t, h.ID, first.Host)
	require.Equal(t, uint64(0), first.Revision)
	require.Empty(t, first.Paths)
	require.Equal(t, 100.0, first.Width)

	h.Publish(snapshot(t, 1, 1))
	h.Publish(snapshot(t, 2, 3))
	for {
		select {
		case m := <-msgs:
			if m.Revision < 2 {
				continue
			}
			require.Len(t, m.Paths, 3)
			require.Equal(t, "M0,0 L0,0", m.Paths[2].Path[0])
			cancel()
			require.NoError(t, <-errc)
			return
		case <-ctx.Done():
			t.Fatal("timed out waiting for revision 2")
		}
	}
}

func TestLateViewerGetsLatest(t *testing.T) {
	h, srv := startHub(t)
	h.Publish(snapshot(t, 7, 2))
	require.Eventually(t, func() bool { return h.Latest().Revision == 7 }, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	got := make(chan Message, 4)
	go Watch(ctx, wsURL(srv), func(m Message) { got <- m })

	select {
	case m := <-got:
		require.Equal(t, uint64(7), m.Revision)
		require.Len(t, m.Paths, 2)
	case <-ctx.Done():
		t.Fatal("no snapshot")
	}
	require.Eventually(t, func() bool { return h.Peers() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestHTTPEndpoints(t *testing.T) {
	h, srv := startHub(t)
	h.Publish(snapshot(t, 1, 1))
	require.Eventually(t, func() bool { return h.Latest().Revision == 1 }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get(srv.URL + "/svg")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	require.True(t, strings.HasPrefix(string(body), `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50"`))
	require.Equal(t, 1, strings.Count(string(body), "<path "))

	resp, err = http.Get(srv.URL + "/paths")
	require.NoError(t, err)
	defer resp.Body.Close()
	var strokes []state.Stroke
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&strokes))
	require.Len(t, strokes, 1)
}

func TestWatchBadURL(t *testing.T) {
	err := Watch(context.Background(), "ws://127.0.0.1:1/ws", func(Message) {})
	require.Error(t, err)
}

func TestShareURL(t *testing.T) {
	u, err := ShareURL("192.168.1.5:8888")
	require.NoError(t, err)
	require.Equal(t, "ws://192.168.1.5:8888/ws", u)

	u, err = ShareURL(":9000")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(u, ":9000/ws"))

	_, err = ShareURL("nonsense")
	require.Error(t, err)

	port, err := ListenPort(":8888")
	require.NoError(t, err)
	require.Equal(t, 8888, port)
}

func TestListenAndServeAddressInUse(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	h := NewHub(10, 10)
	errc := make(chan error, 1)
	go func() { errc <- h.ListenAndServe(context.Background(), l.Addr().String()) }()
	select {
	case err := <-errc:
		require.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("ListenAndServe did not fail on a busy address")
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(10, 10)
	errc := make(chan error, 1)
	go func() { errc <- h.ListenAndServe(ctx, addr) }()
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/paths")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
