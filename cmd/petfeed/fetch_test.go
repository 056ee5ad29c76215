package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption/internal/domain/feed"
	"pet-adoption/internal/platform/geo"
)

func TestFetchCommand_PrintsEntities(t *testing.T) {
	t.Setenv("GEOCODING_API_KEY", "")
	t.Setenv("RETRY_INITIAL_DELAY", "1ms")

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			// primer intento falla; lo cubre el retry
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"value":[` +
			`{"id":"petA","name":"Thor","breed":{"name":"Lab"},"type":{"name":"dog"},"size":2,"age":3,"address":{"city":"São Paulo","state":"SP"}},` +
			`{"id":"petB","name":"Mia","breed":{"name":"SRD"},"type":{"name":"cat"},"size":0,"age":1,"gender":"female","address":{}}` +
			`],"errors":[]}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"fetch", "--url", srv.URL, "--lat", "-23.55", "--lng", "-46.63", "--compact"})
	require.NoError(t, rootCmd.Execute())

	var got []feed.Entity
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 2, calls)

	// Sin geocoder todo cae en el fallback, así que el orden estable se mantiene.
	assert.Equal(t, "petA", got[0].ID)
	assert.Equal(t, "large", got[0].Size)
	assert.Equal(t, geo.FallbackCoordinates, got[1].Coordinates)
	assert.Equal(t, "female", got[1].Gender)
}
