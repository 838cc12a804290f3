// Package feed serves the board to rendering clients: the current snapshot
// over HTTP and committed board changes over WebSocket.
package feed

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-board/internal/board"
	"github.com/rxtech-lab/argo-board/internal/codec"
	"github.com/rxtech-lab/argo-board/internal/logger"
)

// Server exposes a board.Store over HTTP and WebSocket.
type Server struct {
	store  board.Store
	codec  *codec.Codec
	logger *logger.Logger

	httpServer *http.Server
	listener   net.Listener

	upgrader websocket.Upgrader

	wsMu          sync.Mutex
	wsConnections map[*websocket.Conn]bool

	subscription *board.Subscription
	done         chan struct{}
	stopOnce     sync.Once
}

// NewServer creates a feed server for the given store.
func NewServer(store board.Store, log *logger.Logger) *Server {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Server{
		store:  store,
		codec:  codec.NewCodec(log),
		logger: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		wsConnections: make(map[*websocket.Conn]bool),
		done:          make(chan struct{}),
	}
}

// Start starts the server on the given address. If address is empty or ":0",
// a random available port is used.
func (s *Server) Start(address string) error {
	if address == "" {
		address = ":0"
	}

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	s.listener = listener

	router := mux.NewRouter()
	router.HandleFunc("/board", s.handleBoard).Methods("GET")
	router.HandleFunc("/healthz", s.handleHealthz).Methods("GET")
	router.HandleFunc("/ws", s.handleWebSocket)

	s.httpServer = &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.subscription = s.store.Subscribe()
	go s.broadcastChanges()

	go func() {
		if err := s.httpServer.Serve(listener); err != http.ErrServerClosed {
			s.logger.Error("feed server error", zap.Error(err))
		}
	}()

	s.logger.Info("feed server started", zap.String("address", s.Address()))

	return nil
}

// Stop shuts the server down and detaches from the store. It is safe to
// call on a server that never started, and safe to call more than once.
func (s *Server) Stop() error {
	var err error

	s.stopOnce.Do(func() {
		close(s.done)

		if s.subscription != nil {
			s.subscription.Unsubscribe()
		}

		s.wsMu.Lock()
		for conn := range s.wsConnections {
			conn.Close()
		}

		s.wsConnections = make(map[*websocket.Conn]bool)
		s.wsMu.Unlock()

		if s.httpServer != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err = s.httpServer.Shutdown(ctx)
		}
	})

	return err
}

// Address returns the address the server is listening on.
func (s *Server) Address() string {
	if s.listener == nil {
		return ""
	}

	return s.listener.Addr().String()
}

// BaseURL returns the base URL for the server.
func (s *Server) BaseURL() string {
	return "http://" + s.Address()
}

// WebSocketURL returns the WebSocket URL for the server.
func (s *Server) WebSocketURL() string {
	return "ws://" + s.Address() + "/ws"
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	blob, err := s.codec.Encode(s.store.Snapshot())
	if err != nil {
		s.logger.Error("failed to encode board snapshot", zap.Error(err))
		http.Error(w, "failed to encode board", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(blob)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	s.wsMu.Lock()
	s.wsConnections[conn] = true
	s.wsMu.Unlock()

	// Drain incoming frames so close messages are processed.
	go func() {
		defer s.removeConnection(conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// broadcastChanges fans committed board changes out to every connected
// WebSocket client. A client that fails a write is dropped.
func (s *Server) broadcastChanges() {
	for {
		select {
		case <-s.done:
			return
		case change, ok := <-s.subscription.Changes():
			if !ok {
				return
			}

			s.wsMu.Lock()
			for conn := range s.wsConnections {
				if err := conn.WriteJSON(change); err != nil {
					s.logger.Debug("dropping websocket client", zap.Error(err))
					conn.Close()
					delete(s.wsConnections, conn)
				}
			}
			s.wsMu.Unlock()
		}
	}
}

func (s *Server) removeConnection(conn *websocket.Conn) {
	s.wsMu.Lock()
	defer s.wsMu.Unlock()

	if s.wsConnections[conn] {
		delete(s.wsConnections, conn)
		conn.Close()
	}
}
