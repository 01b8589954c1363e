package profiler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Endpoints(t *testing.T) {
	h := Handler()

	tests := []struct {
		name     string
		endpoint string
	}{
		{name: "index", endpoint: Prefix},
		{name: "cmdline", endpoint: Prefix + "cmdline"},
		{name: "symbol", endpoint: Prefix + "symbol"},
		{name: "goroutine", endpoint: Prefix + "goroutine?debug=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.endpoint, nil))
			assert.Equal(t, http.StatusOK, rec.Code, "GET %s", tt.endpoint)
		})
	}
}

func TestServer_StartAndShutdown(t *testing.T) {
	server := New(0)
	assert.Empty(t, server.Addr())

	require.NoError(t, server.Start(context.Background()))
	require.NotEmpty(t, server.Addr())

	resp, err := http.Get("http://" + server.Addr() + Prefix)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, server.Shutdown(shutdownCtx))
}
