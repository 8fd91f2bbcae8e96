package spectre

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gitlab.com/TitanInd/sprcalc/internal/lib"
)

func newTestServer(t *testing.T, routes map[string]http.HandlerFunc) *httptest.Server {
	mux := http.NewServeMux()
	for path, handler := range routes {
		mux.HandleFunc(path, handler)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func newTestClient(t *testing.T, srv *httptest.Server, timeout time.Duration) *Client {
	httpClient := srv.Client()
	httpClient.Timeout = timeout
	client, err := NewClient(srv.URL, httpClient, lib.NewTestLogger())
	require.NoError(t, err)
	return client
}

func TestGetSnapshot(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		pathHashrate:    respond(`{"hashrate": 0.025}`),
		pathPrice:       respond(`{"price": 0.0123}`),
		pathBlockReward: respond(`{"blockreward": 11.75}`),
	})
	client := newTestClient(t, srv, time.Second)

	snapshot := client.GetSnapshot(context.Background())

	require.InDelta(t, 25000.0, snapshot.HashrateMHS, 1e-6)
	require.Equal(t, 0.0123, snapshot.PriceUSD)
	require.Equal(t, 11.75, snapshot.BlockReward)
}

func TestGetFieldMissing(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		pathPrice: respond(`{"currency": "usd"}`),
	})
	client := newTestClient(t, srv, time.Second)

	require.Zero(t, client.GetPrice(context.Background()))
}

func TestGetServerError(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		pathHashrate: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("internal error"))
		},
		pathPrice:       respond(`{"price": 0.5}`),
		pathBlockReward: respond(`{"blockreward": 10}`),
	})
	client := newTestClient(t, srv, time.Second)

	snapshot := client.GetSnapshot(context.Background())

	require.Zero(t, snapshot.HashrateMHS)
	require.Equal(t, 0.5, snapshot.PriceUSD, "other fields are fetched regardless")
	require.Equal(t, 10.0, snapshot.BlockReward)
}

func TestGetMalformedJSON(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		pathBlockReward: respond(`<html>`),
	})
	client := newTestClient(t, srv, time.Second)

	require.Zero(t, client.GetBlockReward(context.Background()))
}

func TestGetTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := newTestServer(t, map[string]http.HandlerFunc{
		pathHashrate: func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		},
	})
	defer close(release)
	client := newTestClient(t, srv, 50*time.Millisecond)

	require.Zero(t, client.GetNetworkHashrate(context.Background()))
}

func TestGetCancelled(t *testing.T) {
	srv := newTestServer(t, map[string]http.HandlerFunc{
		pathPrice: respond(`{"price": 0.5}`),
	})
	client := newTestClient(t, srv, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Zero(t, client.GetPrice(ctx))
}
