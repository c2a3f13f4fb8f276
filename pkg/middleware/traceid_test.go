package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestTraceIDMiddlewareGeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	TraceIDMiddleware()(c)

	got := w.Header().Get("X-Trace-ID")
	if got == "" {
		t.Fatalf("expected a generated trace id")
	}
	if ctxID := c.GetString("trace_id"); ctxID != got {
		t.Fatalf("context trace id %q does not match header %q", ctxID, got)
	}
}

func TestTraceIDMiddlewareReusesInboundHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("X-Trace-ID", "client-supplied-id")

	TraceIDMiddleware()(c)

	if got := w.Header().Get("X-Trace-ID"); got != "client-supplied-id" {
		t.Fatalf("trace id = %q, want the client's id", got)
	}
}
