package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/article-sections/internal/middleware"
)

const allowedOrigin = "http://localhost:5173"

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func corsRequest(method, origin string) *http.Request {
	req := httptest.NewRequest(method, "/api/articles", nil)
	req.Header.Set("Origin", origin)
	return req
}

// A browser reading the response from JS needs both the origin grant and
// X-Request-Id exposed to correlate errors with server logs.
func TestCORSHandler_AllowedOrigin_ExposesRequestID(t *testing.T) {
	h := middleware.NewCORSHandler([]string{allowedOrigin})(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, corsRequest(http.MethodGet, allowedOrigin))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
	assert.Contains(t, rec.Header().Values("Vary"), "Origin")
}

// Preflights for the write methods of the article routes are answered by the
// middleware itself.
func TestCORSHandler_Preflight_WriteMethods(t *testing.T) {
	h := middleware.NewCORSHandler([]string{allowedOrigin})(okHandler)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := corsRequest(http.MethodOptions, allowedOrigin)
			req.Header.Set("Access-Control-Request-Method", method)
			// Browsers send requested header names lower-cased.
			req.Header.Set("Access-Control-Request-Headers", "content-type")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, method, rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "content-type", rec.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestCORSHandler_Preflight_UnlistedMethodNotGranted(t *testing.T) {
	h := middleware.NewCORSHandler([]string{allowedOrigin})(okHandler)

	req := corsRequest(http.MethodOptions, allowedOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSHandler_DisallowedOrigin_NoGrant(t *testing.T) {
	h := middleware.NewCORSHandler([]string{allowedOrigin})(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, corsRequest(http.MethodGet, "http://evil.example.com"))

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Expose-Headers"))
}

func TestCORSHandler_NoOrigins_PassesThrough(t *testing.T) {
	h := middleware.NewCORSHandler(nil)(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, corsRequest(http.MethodGet, allowedOrigin))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Values("Vary"))
}
