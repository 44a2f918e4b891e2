package upstream_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirfield/worldatlas/internal/adapters/upstream"
	"github.com/mirfield/worldatlas/internal/domain/shared"
	"github.com/mirfield/worldatlas/internal/domain/world"
)

func newTestClient(baseURL string, clock shared.Clock) *upstream.Client {
	return upstream.NewClient(upstream.ClientConfig{
		BaseURL:     baseURL,
		Timeout:     2 * time.Second,
		RateLimit:   1000,
		Burst:       100,
		MaxRetries:  3,
		BackoffBase: time.Millisecond,
		Clock:       clock,
	})
}

func TestClient_FetchPlanetBuildsQuery(t *testing.T) {
	var gotQuery atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.RawQuery)
		w.Write([]byte(`{"countries": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	body, err := client.FetchPlanet(context.Background(), "cyq`s")

	require.NoError(t, err)
	assert.JSONEq(t, `{"countries": []}`, string(body))
	assert.Equal(t, "view=planet&planet=cyq%60s", gotQuery.Load())
}

func TestClient_NonRetryableStatusFailsImmediately(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.Error(w, "no such view", http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	_, err := client.FetchPlanet(context.Background(), "test")

	require.Error(t, err)
	var fetchErr *world.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.Status)
	assert.Equal(t, int64(1), requests.Load(), "4xx other than 429 is not retried")
}

func TestClient_RetriesServerErrorsThenSucceeds(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) <= 2 {
			http.Error(w, "overloaded", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"countries": []}`))
	}))
	defer server.Close()

	clock := shared.NewMockClock(time.Now())
	client := newTestClient(server.URL, clock)

	body, err := client.FetchPlanet(context.Background(), "test")

	require.NoError(t, err)
	assert.NotEmpty(t, body)
	assert.Equal(t, int64(3), requests.Load())
	assert.Len(t, clock.Slept, 2, "one backoff pause per failed attempt")
}

func TestClient_RetriesRateLimitStatus(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			http.Error(w, "slow down", http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	clock := shared.NewMockClock(time.Now())
	client := newTestClient(server.URL, clock)

	_, err := client.FetchPlanet(context.Background(), "test")

	require.NoError(t, err)
	assert.Equal(t, int64(2), requests.Load())
}

func TestClient_ExhaustedRetriesSurfaceLastStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	clock := shared.NewMockClock(time.Now())
	client := newTestClient(server.URL, clock)

	_, err := client.FetchPlanet(context.Background(), "test")

	require.Error(t, err)
	var fetchErr *world.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusServiceUnavailable, fetchErr.Status)
	assert.Contains(t, fetchErr.Error(), "max retries exceeded")
}

func TestClient_HealthParsesTopLevelFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"project": "atlas-data", "spreadsheetId": "ss-1", "sheets": ["test", "sevyr"]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	info, err := client.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "atlas-data", info.Project)
	assert.Equal(t, []string{"test", "sevyr"}, info.Sheets)
}

func TestClient_HealthBadJSONIsParseError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, nil)
	_, err := client.Health(context.Background())

	require.Error(t, err)
	var parseErr *world.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
