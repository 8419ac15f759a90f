package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BaseMax/travel-planner-graphql/internal/requestid"
	"github.com/BaseMax/travel-planner-graphql/internal/transport/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine() (*gin.Engine, *string) {
	var seen string
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = requestid.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	r, seen := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get("X-Request-ID")
	if id == "" {
		t.Fatal("no X-Request-ID header set")
	}
	if *seen != id {
		t.Fatalf("context id %q != header id %q", *seen, id)
	}
}

func TestRequestID_IncomingHeaderPreserved(t *testing.T) {
	r, seen := newEngine()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "incoming-id")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "incoming-id" {
		t.Fatalf("header id %q, want incoming-id", got)
	}
	if *seen != "incoming-id" {
		t.Fatalf("context id %q, want incoming-id", *seen)
	}
}

func TestSecurity_SetsHeaders(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Security())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	} {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}
