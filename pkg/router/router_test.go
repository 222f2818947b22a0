package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(body string) HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body))
	}
}

func serve(r *Router, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRouterExactAndWildcard(t *testing.T) {
	r := New()
	r.GET("/api/v1/topics", text("topics"))
	r.GET("/api/v1/datasets/*/report", text("report"))
	r.GET("/api/v1/datasets/*", text("dataset"))
	r.POST("/api/v1/datasets", text("created"))

	assert.Equal(t, "topics", serve(r, http.MethodGet, "/api/v1/topics").Body.String())
	assert.Equal(t, "created", serve(r, http.MethodPost, "/api/v1/datasets").Body.String())
	assert.Equal(t, "report", serve(r, http.MethodGet, "/api/v1/datasets/abc/report").Body.String())
	assert.Equal(t, "dataset", serve(r, http.MethodGet, "/api/v1/datasets/abc").Body.String())
}

func TestRouterWildcardRegistrationOrder(t *testing.T) {
	r := New()
	r.GET("/files/*", text("catch-all"))
	r.GET("/files/*/meta", text("meta"))

	// the trailing wildcard was registered first and swallows everything below it
	for i := 0; i < 20; i++ {
		assert.Equal(t, "catch-all", serve(r, http.MethodGet, "/files/a/meta").Body.String())
	}
}

func TestRouterNotFoundAndMethodNotAllowed(t *testing.T) {
	r := New()
	r.GET("/api/v1/topics", text("topics"))
	r.GET("/swagger/*", text("docs"))

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/nope").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(r, http.MethodPost, "/api/v1/topics").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(r, http.MethodDelete, "/swagger/index.html").Code)
	assert.Equal(t, "docs", serve(r, http.MethodGet, "/swagger/index.html").Body.String())
}

func TestMatchWildcardRoute(t *testing.T) {
	assert.True(t, matchWildcardRoute("/a/b/c", "/a/*"))
	assert.True(t, matchWildcardRoute("/a/x/c", "/a/*/c"))
	assert.False(t, matchWildcardRoute("/a/x/d", "/a/*/c"))
	assert.False(t, matchWildcardRoute("/b/x", "/a/*"))
}

func TestRouterRegistersRoutes(t *testing.T) {
	r := New()
	r.PUT("/x", text("put"))
	r.PATCH("/x", text("patch"))
	r.DELETE("/x", text("delete"))

	assert.Len(t, r.Routes(), 3)
	assert.True(t, r.Paths()["/x"])
	assert.Equal(t, "patch", serve(r, http.MethodPatch, "/x").Body.String())
}

func TestShutdownBeforeStart(t *testing.T) {
	r := New()
	require.NoError(t, r.Shutdown(context.Background()))
	// a signal that arrives before the server goroutine runs must still stop it
	assert.NoError(t, r.Start("127.0.0.1:0", r.Handler(), time.Second))
}

func TestShutdownWhileStarting(t *testing.T) {
	r := New()
	done := make(chan error, 1)
	go func() {
		done <- r.Start("127.0.0.1:0", r.Handler(), time.Second)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, r.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}
