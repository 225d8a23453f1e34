package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/panchayat-backend/internal/platform/ctxutil"
)

func TestAttachTraceContextPropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	var seen *ctxutil.TraceData
	r.GET("/x", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(headerRequestID, "req-42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen == nil || seen.RequestID != "req-42" || seen.TraceID == "" {
		t.Fatalf("unexpected trace data: %+v", seen)
	}
	if got := rec.Header().Get(headerRequestID); got != "req-42" {
		t.Fatalf("request id header: want=req-42 got=%q", got)
	}
	if rec.Header().Get(headerTraceID) != seen.TraceID {
		t.Fatalf("trace id header mismatch")
	}
}

func TestAttachTraceContextReplacesUnsafeIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(headerRequestID, "req 42\"; drop")
	req.Header.Set(headerTraceID, strings.Repeat("a", maxInboundIDLen+1))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get(headerRequestID); got == "" || strings.Contains(got, " ") {
		t.Fatalf("request id should be regenerated, got %q", got)
	}
	if got := rec.Header().Get(headerTraceID); len(got) > maxInboundIDLen || got == "" {
		t.Fatalf("trace id should be regenerated, got %q", got)
	}
}

func TestInboundID(t *testing.T) {
	cases := map[string]string{
		"  abc-123  ": "abc-123",
		"gp.req:7_x":  "gp.req:7_x",
		"bad/slash":   "",
		"":            "",
		"नमस्ते":      "",
	}
	for in, want := range cases {
		if got := inboundID(in); got != want {
			t.Fatalf("inboundID(%q): want=%q got=%q", in, want, got)
		}
	}
}
