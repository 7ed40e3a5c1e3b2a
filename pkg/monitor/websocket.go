package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"digital.vasic.matchers/pkg/logging"
)

// Server exposes a WebSocket endpoint that broadcasts evaluation
// events as JSON, plus /stats and /health endpoints.
type Server struct {
	mu        sync.Mutex
	collector *Collector
	clients   map[*websocket.Conn]struct{}
	addr      string
	server    *http.Server
	upgrader  websocket.Upgrader
	log       logging.Logger
}

// NewServer creates a monitoring server for the given collector. A
// nil logger discards output.
func NewServer(addr string, collector *Collector, log logging.Logger) *Server {
	if log == nil {
		log = logging.NewNullLogger()
	}
	return &Server{
		collector: collector,
		clients:   make(map[*websocket.Conn]struct{}),
		addr:      addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// Start begins serving and blocks until ctx is cancelled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	s.server = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	s.collector.OnEvent(func(event Event) {
		data, err := json.Marshal(event)
		if err != nil {
			s.log.Error("marshal event", logging.Field{Key: "error", Value: err})
			return
		}
		s.broadcast(data)
	})

	go func() {
		<-ctx.Done()
		s.server.Close()
	}()

	s.log.Info("monitor listening", logging.Field{Key: "addr", Value: s.addr})
	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("websocket upgrade", logging.Field{Key: "error", Value: err})
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()
	s.log.Debug("client connected", logging.Field{Key: "remote", Value: conn.RemoteAddr().String()})

	// Read loop only detects close; inbound messages are discarded.
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.collector.Stats())
}

// broadcast writes data to all connected clients, dropping clients
// whose connection fails.
func (s *Server) broadcast(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(s.clients, conn)
			conn.Close()
		}
	}
}
