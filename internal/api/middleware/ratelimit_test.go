package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/inkpost/inkpost-api/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/generate-post", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_RejectsOverCapacity(t *testing.T) {
	limiter := ratelimit.NewSlidingWindow(60*time.Second, 3)
	handler := RateLimit(limiter)(okHandler())

	for i := 0; i < 3; i++ {
		rec := doRequest(handler, "10.0.0.1:1234", "")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d within capacity", i+1)
	}

	rec := doRequest(handler, "10.0.0.1:1234", "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Too many requests. Please try again later.", resp["error"])
}

func TestRateLimit_ClientsAreIndependent(t *testing.T) {
	limiter := ratelimit.NewSlidingWindow(60*time.Second, 1)
	handler := RateLimit(limiter)(okHandler())

	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1:1234", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, doRequest(handler, "10.0.0.1:5678", "").Code,
		"same host on a new port shares the window")
	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.2:1234", "").Code,
		"a different host gets its own window")
}

func TestRateLimit_ForwardedForTakesPrecedence(t *testing.T) {
	limiter := ratelimit.NewSlidingWindow(60*time.Second, 1)
	handler := RateLimit(limiter)(okHandler())

	assert.Equal(t, http.StatusOK,
		doRequest(handler, "10.0.0.1:1234", "203.0.113.7, 10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests,
		doRequest(handler, "10.0.0.9:9999", "203.0.113.7").Code,
		"same forwarded client is limited regardless of connection address")
	assert.Equal(t, http.StatusOK,
		doRequest(handler, "10.0.0.1:1234", "").Code,
		"connection address was never charged while the header was present")
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		name         string
		remoteAddr   string
		forwardedFor string
		want         string
	}{
		{name: "remote addr host only", remoteAddr: "10.0.0.1:1234", want: "10.0.0.1"},
		{name: "unparseable remote addr passes through", remoteAddr: "bogus", want: "bogus"},
		{name: "single forwarded entry", remoteAddr: "10.0.0.1:1234", forwardedFor: "203.0.113.7", want: "203.0.113.7"},
		{name: "first forwarded entry wins", remoteAddr: "10.0.0.1:1234", forwardedFor: " 203.0.113.7 , 10.0.0.1", want: "203.0.113.7"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.forwardedFor != "" {
				req.Header.Set("X-Forwarded-For", tc.forwardedFor)
			}
			assert.Equal(t, tc.want, clientKey(req))
		})
	}
}
