package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func powerServer(t *testing.T, annual float64, calls *int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			*calls++
		}
		assert.Equal(t, irradianceParameter, r.URL.Query().Get("parameters"))
		assert.Equal(t, "RE", r.URL.Query().Get("community"))
		fmt.Fprintf(w, `{"properties":{"parameter":{"%s":{"ANN":%g,"JAN":3.1}}}}`,
			irradianceParameter, annual)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchDailyIrradiance(t *testing.T) {
	srv := powerServer(t, 5.43, nil)
	c := NewIrradianceClient(srv.URL, time.Second)

	v, err := c.FetchDailyIrradiance(context.Background(), -120.5, 38.6)
	require.NoError(t, err)
	assert.Equal(t, 5.43, v)
}

func TestFetchDailyIrradianceCaches(t *testing.T) {
	calls := 0
	srv := powerServer(t, 4.2, &calls)
	c := NewIrradianceClient(srv.URL, time.Second)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		v, err := c.FetchDailyIrradiance(ctx, -120.5, 38.6)
		require.NoError(t, err)
		assert.Equal(t, 4.2, v)
	}
	assert.Equal(t, 1, calls, "repeat lookups should be served from cache")

	// Coordinates within rounding distance share a cache entry.
	_, err := c.FetchDailyIrradiance(ctx, -120.500004, 38.600004)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// A distinct location misses.
	_, err = c.FetchDailyIrradiance(ctx, -121.0, 38.6)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFetchDailyIrradianceCacheEviction(t *testing.T) {
	calls := 0
	srv := powerServer(t, 4.2, &calls)
	c := NewIrradianceClient(srv.URL, time.Second)
	c.CacheSize = 2

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := c.FetchDailyIrradiance(ctx, float64(i), 0)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)

	// The first key was evicted when the third was stored.
	_, err := c.FetchDailyIrradiance(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, calls)

	// The third is still resident.
	_, err = c.FetchDailyIrradiance(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, calls)
}

func TestFetchDailyIrradianceNegativeValue(t *testing.T) {
	srv := powerServer(t, -999.0, nil)
	c := NewIrradianceClient(srv.URL, time.Second)

	_, err := c.FetchDailyIrradiance(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "implausible")
}

func TestFetchDailyIrradianceMissingAnnual(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"properties":{"parameter":{"%s":{"JAN":3.1}}}}`, irradianceParameter)
	}))
	defer srv.Close()
	c := NewIrradianceClient(srv.URL, time.Second)

	_, err := c.FetchDailyIrradiance(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestFetchDailyIrradianceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()
	c := NewIrradianceClient(srv.URL, time.Second)

	_, err := c.FetchDailyIrradiance(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NASA POWER")
}

func TestFetchDailyIrradianceMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer srv.Close()
	c := NewIrradianceClient(srv.URL, time.Second)

	_, err := c.FetchDailyIrradiance(context.Background(), 0, 0)
	require.Error(t, err)
}

func TestFetchDailyIrradianceContextCancelled(t *testing.T) {
	srv := powerServer(t, 5.0, nil)
	c := NewIrradianceClient(srv.URL, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.FetchDailyIrradiance(ctx, 0, 0)
	require.Error(t, err)
}
