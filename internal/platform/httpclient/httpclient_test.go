package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_DecodesJSONAndEncodesQuery(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", time.Second)
	require.NoError(t, err)

	var out struct {
		Status string `json:"status"`
	}
	err = c.Get(context.Background(), "json", url.Values{"address": {"Rua Augusta, 100, São Paulo"}}, &out)
	require.NoError(t, err)

	assert.Equal(t, "OK", out.Status)
	assert.Equal(t, "Rua Augusta, 100, São Paulo", gotQuery.Get("address"))
}

func TestDo_Non2xxReturnsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(time.Second)
	err := c.DoJSON(context.Background(), http.MethodGet, srv.URL, nil, nil, nil)
	require.Error(t, err)

	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadGateway, he.StatusCode)
	assert.Equal(t, "nope", he.Body)
	assert.Equal(t, http.StatusBadGateway, StatusCode(err))
}

func TestDo_RelativePathWithoutBaseURL(t *testing.T) {
	c := New(0)
	err := c.Get(context.Background(), "/pets", nil, nil)
	assert.EqualError(t, err, "httpclient: relative path requires BaseURL")
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
}

func TestNew_NegativeTimeoutMeansNone(t *testing.T) {
	assert.Equal(t, time.Duration(0), New(NoTimeout).HTTP.Timeout)
	assert.Equal(t, 3*time.Second, New(3*time.Second).HTTP.Timeout)
}

func TestResolveURL_EmptyPathUsesBaseURL(t *testing.T) {
	c := New(0)
	require.NoError(t, c.SetBaseURL("https://maps.example.com/geocode/json"))

	got, err := c.resolveURL("", url.Values{"key": {"k"}})
	require.NoError(t, err)
	assert.Equal(t, "https://maps.example.com/geocode/json?key=k", got)
}

func TestNewWithBaseURL_Invalid(t *testing.T) {
	_, err := NewWithBaseURL("not a url", time.Second)
	assert.Error(t, err)
}

func TestHeaderTransport_SetsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewWithTransport(time.Second, &HeaderTransport{Headers: map[string]string{"X-Api-Key": "secret"}})
	require.NoError(t, c.Get(context.Background(), srv.URL, nil, nil))
}
