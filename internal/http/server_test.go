package http

import (
	"context"
	"net"
	nethttp "net/http"
	"testing"
	"time"

	httpH "github.com/yungbote/panchayat-backend/internal/http/handlers"
	"github.com/yungbote/panchayat-backend/internal/platform/logger"
)

func newTestServer() *Server {
	log := logger.Nop()
	return NewServer(RouterConfig{
		Log:                log,
		HealthHandler:      httpH.NewHealthHandler(nil),
		VillageInfoHandler: httpH.NewVillageInfoHandler(log, &stubVillageInfoService{}),
	})
}

func waitRun(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: want nil after Shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run still serving 2s after Shutdown")
	}
}

func TestShutdownBeforeRunStops(t *testing.T) {
	s := newTestServer()
	done := make(chan error, 1)
	go func() { done <- s.Run("127.0.0.1:0") }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	waitRun(t, done)
}

func TestShutdownDrainsServingListener(t *testing.T) {
	s := newTestServer()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	done := make(chan error, 1)
	go func() { done <- s.Serve(ln) }()

	url := "http://" + ln.Addr().String() + "/healthcheck"
	var served bool
	for i := 0; i < 50 && !served; i++ {
		resp, err := nethttp.Get(url)
		if err == nil {
			served = resp.StatusCode == nethttp.StatusOK
			resp.Body.Close()
		}
		if !served {
			time.Sleep(20 * time.Millisecond)
		}
	}
	if !served {
		t.Fatalf("server never answered %s", url)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	waitRun(t, done)
}

func TestRunReportsListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	if err := newTestServer().Run(ln.Addr().String()); err == nil {
		t.Fatalf("want address-in-use error")
	}
}
