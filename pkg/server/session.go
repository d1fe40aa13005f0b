package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/classbind/pkg/classbind"
	"github.com/vango-dev/classbind/pkg/protocol"
	"github.com/vango-dev/classbind/pkg/scheduler"
)

// Session is one WebSocket client receiving class patch frames. Each
// session owns a scheduler, a patch buffer, and the bindings created
// through Bind. Bindings and the scheduler are only ever touched from the
// session's cycle goroutine; host mutations go through Do.
type Session struct {
	id      string
	conn    *websocket.Conn
	config  *ServerConfig
	logger  *slog.Logger
	metrics *metrics

	sched  *scheduler.Scheduler
	buffer *protocol.Buffer

	// actions queues host mutations to run at the start of the next
	// cycle, keeping all scheduler access on one goroutine.
	actions chan func(*scheduler.Scheduler)

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// newSession creates a session for an upgraded connection.
func newSession(id string, conn *websocket.Conn, config *ServerConfig, logger *slog.Logger, m *metrics) *Session {
	buffer := protocol.NewBuffer()
	return &Session{
		id:      id,
		conn:    conn,
		config:  config,
		logger:  logger.With("session", id),
		metrics: m,
		sched:   scheduler.New(scheduler.WithLogger(logger)),
		buffer:  buffer,
		actions: make(chan func(*scheduler.Scheduler), 64),
		send:    make(chan []byte, config.SendBuffer),
		done:    make(chan struct{}),
	}
}

// ID returns the session's ID.
func (s *Session) ID() string {
	return s.id
}

// Bind creates a class binding for an element and registers it with the
// session's scheduler. The binding writes patches into the session's
// buffer. Must be called before the cycle loop starts or via Do.
func (s *Session) Bind(hid string) *classbind.Binding {
	b := classbind.New(s.buffer, hid, classbind.WithLogger(s.logger))
	s.sched.Register(b)
	return b
}

// Do queues a mutation to run on the session's cycle goroutine before the
// next check cycle. Returns false if the session is closed or the queue is
// full.
func (s *Session) Do(fn func(*scheduler.Scheduler)) bool {
	select {
	case <-s.done:
		return false
	case s.actions <- fn:
		return true
	default:
		s.logger.Warn("action queue full, dropping mutation")
		return false
	}
}

// FlushCycle drains queued actions, runs one check cycle, and sends any
// resulting patches as a single frame.
func (s *Session) FlushCycle(ctx context.Context) error {
	for {
		select {
		case fn := <-s.actions:
			fn(s.sched)
			continue
		default:
		}
		break
	}

	s.metrics.checkCycles.Inc()
	if err := s.sched.RunCycle(ctx); err != nil {
		s.metrics.checkErrors.Inc()
		return err
	}

	frame := s.buffer.Flush()
	if frame == nil {
		return nil
	}

	data, err := protocol.EncodeFrame(frame)
	if err != nil {
		return err
	}

	select {
	case s.send <- data:
		s.metrics.framesSent.Inc()
		s.metrics.patchesSent.Add(float64(len(frame.Patches)))
	case <-s.done:
	default:
		// Slow consumer: drop the session rather than buffer unbounded.
		s.logger.Warn("send buffer full, closing session")
		s.Close()
	}
	return nil
}

// RunCycles runs check cycles at the configured interval until the session
// closes or ctx is cancelled. Cycle errors are fatal for the session.
// Teardown happens here so that all scheduler access stays on this
// goroutine.
func (s *Session) RunCycles(ctx context.Context) {
	ticker := time.NewTicker(s.config.CycleInterval)
	defer ticker.Stop()
	defer s.sched.TeardownAll()

	for {
		select {
		case <-s.done:
			return
		case <-ctx.Done():
			s.Close()
			return
		case <-ticker.C:
			if err := s.FlushCycle(ctx); err != nil {
				s.logger.Error("cycle failed", "error", err)
				s.Close()
				return
			}
		}
	}
}

// WriteLoop pumps outbound frames and keepalive pings to the client.
// It blocks until the session closes.
func (s *Session) WriteLoop() {
	ticker := time.NewTicker(s.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return

		case data := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				s.metrics.wsErrors.WithLabelValues("write").Inc()
				s.logger.Error("write error", "error", err)
				s.Close()
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.metrics.wsErrors.WithLabelValues("ping").Inc()
				s.Close()
				return
			}
		}
	}
}

// ReadLoop consumes inbound messages. The patch stream is one-way; clients
// only send pongs and close frames, so anything else is discarded. Blocks
// until the connection drops.
func (s *Session) ReadLoop() {
	defer s.Close()

	s.conn.SetReadLimit(protocol.MaxFrameBytes)
	s.conn.SetReadDeadline(time.Now().Add(s.config.PongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.config.PongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.metrics.wsErrors.WithLabelValues("read").Inc()
				s.logger.Error("read error", "error", err)
			}
			return
		}
	}
}

// Close closes the connection and signals every loop to stop. Idempotent.
// Binding teardown runs on the cycle goroutine as it exits.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.conn.Close()
		s.metrics.activeSessions.Dec()
		s.logger.Debug("session closed")
	})
}
