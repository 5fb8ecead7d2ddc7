package socket

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ResponseTimeout bounds how long a synchronous command waits for the app
const ResponseTimeout = 10 * time.Second

// Server represents a Unix socket server for accepting external commands
type Server struct {
	socketPath string
	listener   net.Listener
	msgChan    chan Message
	stopChan   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	logger     *zap.Logger
}

// DefaultSocketDir returns the directory sockets are created in
func DefaultSocketDir() string {
	// Use XDG_RUNTIME_DIR if available, otherwise fall back to ~/.local/share
	if xdgRuntime := os.Getenv("XDG_RUNTIME_DIR"); xdgRuntime != "" {
		return filepath.Join(xdgRuntime, "tui-reconcile")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "tui-reconcile")
}

// SocketName returns the socket file name for a process id
func SocketName(pid int) string {
	return fmt.Sprintf("tuir-%d.sock", pid)
}

// NewServer creates a new Unix socket server in socketDir
func NewServer(socketDir string, pid int, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(socketDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create socket directory: %w", err)
	}

	socketPath := filepath.Join(socketDir, SocketName(pid))

	// Remove existing socket if it exists
	if err := os.RemoveAll(socketPath); err != nil {
		return nil, fmt.Errorf("failed to remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on socket: %w", err)
	}

	logger.Info("socket server listening", zap.String("path", socketPath))

	return &Server{
		socketPath: socketPath,
		listener:   listener,
		msgChan:    make(chan Message, 10), // Buffer up to 10 messages
		stopChan:   make(chan struct{}),
		logger:     logger,
	}, nil
}

// Start begins accepting connections on the socket
func (s *Server) Start() {
	s.wg.Add(1)
	go s.acceptLoop()
}

// acceptLoop continuously accepts new connections
func (s *Server) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.stopChan:
				return
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Warn("error accepting connection", zap.Error(err))
			continue
		}
		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

// handleConnection processes a single client connection
func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	decoder := json.NewDecoder(conn)
	encoder := json.NewEncoder(conn)
	reply := func(r Response) {
		if err := encoder.Encode(r); err != nil {
			s.logger.Debug("failed to write response", zap.Error(err))
		}
	}

	var msg Message
	if err := decoder.Decode(&msg); err != nil {
		if err != io.EOF {
			s.logger.Warn("error decoding message", zap.Error(err))
		}
		reply(Response{Success: false, Message: fmt.Sprintf("Invalid message format: %v", err)})
		return
	}

	if msg.Command == "" {
		reply(Response{Success: false, Message: "Missing command field"})
		return
	}
	if !IsKnown(msg.Command) {
		reply(Response{Success: false, Message: fmt.Sprintf("Unknown command: %s", msg.Command)})
		return
	}

	if IsSynchronous(msg.Command) {
		msg.ResponseChan = make(chan *Response, 1)
	}

	select {
	case s.msgChan <- msg:
		if msg.ResponseChan == nil {
			reply(Response{Success: true, Message: "Command queued"})
			return
		}
		select {
		case response := <-msg.ResponseChan:
			reply(*response)
		case <-time.After(ResponseTimeout):
			reply(Response{Success: false, Message: "Command timed out"})
		case <-s.stopChan:
			reply(Response{Success: false, Message: "Server is shutting down"})
		}
	case <-s.stopChan:
		reply(Response{Success: false, Message: "Server is shutting down"})
	}
}

// Messages returns the channel for receiving messages
func (s *Server) Messages() <-chan Message {
	return s.msgChan
}

// SocketPath returns the path to the Unix socket
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Stop stops the server, waits for its connections and removes the socket
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
		if s.listener != nil {
			s.listener.Close()
		}
		s.wg.Wait()
		if s.socketPath != "" {
			os.Remove(s.socketPath)
		}
		s.logger.Info("socket server stopped")
	})
}
