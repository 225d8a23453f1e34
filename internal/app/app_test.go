package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	httpx "github.com/yungbote/panchayat-backend/internal/http"
	httpH "github.com/yungbote/panchayat-backend/internal/http/handlers"
	"github.com/yungbote/panchayat-backend/internal/platform/logger"
)

func TestNewWiresSQLiteApp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "file:app_wiring_test?mode=memory&cache=shared")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("OTEL_ENABLED", "false")

	a, err := New(context.Background(), logger.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Close)

	w := httptest.NewRecorder()
	a.Server.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("readyz: want=200 got=%d body=%s", w.Code, w.Body.String())
	}

	body := `{"core":{"village_code":100234,"subdistrict_code":7,"village_name":"Lakeview","year":"2023-24"},` +
		`"category":"population","payload":{"total_population":5321,"households":1203}}`
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/village-info", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	a.Server.Engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("submit status: want=200 got=%d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	a.Server.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/village-info/100234?year=2023-24", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"total_population":5321`) {
		t.Fatalf("get: code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestRunReturnsWhenCancelledDuringStartup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.Nop()
	a := &App{
		Log: log,
		Cfg: Config{Port: "0", ShutdownTimeout: time.Second},
		Server: httpx.NewServer(httpx.RouterConfig{
			Log:           log,
			HealthHandler: httpH.NewHealthHandler(nil),
		}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Run did not return after cancellation")
	}
}
