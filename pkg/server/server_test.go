package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/classbind/pkg/protocol"
	"github.com/vango-dev/classbind/pkg/scheduler"
)

func TestConfigNormalizeFillsDefaults(t *testing.T) {
	cfg := &ServerConfig{}
	cfg.normalize()

	if cfg.Addr != ":8090" {
		t.Errorf("Addr = %q, want :8090", cfg.Addr)
	}
	if cfg.CycleInterval != 100*time.Millisecond {
		t.Errorf("CycleInterval = %v, want 100ms", cfg.CycleInterval)
	}
	if cfg.SendBuffer != 64 {
		t.Errorf("SendBuffer = %d, want 64", cfg.SendBuffer)
	}
	if cfg.Logger == nil {
		t.Error("Logger should default to slog.Default()")
	}
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(NewServer(nil).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"ok"`) {
		t.Errorf("Body = %s, want ok status", body)
	}
}

func TestIndexPage(t *testing.T) {
	srv := httptest.NewServer(NewServer(nil).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET / error: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "classbind") {
		t.Error("Index page should mention classbind")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := httptest.NewServer(NewServer(nil).Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Status = %d, want 200", resp.StatusCode)
	}
}

func TestWebSocketPatchStream(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.CycleInterval = 5 * time.Millisecond

	s := NewServer(cfg)
	s.OnSession(func(sess *Session) {
		sess.Bind("demo")
		sess.Do(func(sched *scheduler.Scheduler) {
			if err := sched.SetSpec("demo", "a b"); err != nil {
				t.Errorf("SetSpec error: %v", err)
			}
		})
	})

	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial error: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	msgType, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage error: %v", err)
	}
	if msgType != websocket.BinaryMessage {
		t.Errorf("Message type = %d, want binary", msgType)
	}

	frame, err := protocol.DecodeFrame(data)
	if err != nil {
		t.Fatalf("DecodeFrame error: %v", err)
	}
	if frame.Seq != 1 {
		t.Errorf("Seq = %d, want 1", frame.Seq)
	}
	if len(frame.Patches) != 2 {
		t.Fatalf("Expected 2 patches, got %+v", frame.Patches)
	}
	if frame.Patches[0].Op != protocol.PatchAddClass || frame.Patches[0].Class != "a" {
		t.Errorf("Patch[0] = %+v, want AddClass a", frame.Patches[0])
	}
	if frame.Patches[1].Class != "b" {
		t.Errorf("Patch[1] = %+v, want AddClass b", frame.Patches[1])
	}
}

func TestWebSocketQuietWhenUnchanged(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.CycleInterval = 5 * time.Millisecond

	s := NewServer(cfg)
	s.OnSession(func(sess *Session) {
		sess.Bind("demo")
		sess.Do(func(sched *scheduler.Scheduler) {
			sched.SetSpec("demo", []string{"x"})
		})
	})

	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	wsURL := strings.Replace(srv.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial error: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err != nil {
		t.Fatalf("ReadMessage error: %v", err)
	}

	// No further frames: an unchanged spec emits nothing on later cycles.
	conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("Expected no second frame for an unchanged spec")
	}
}
