package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

var ErrBind = errors.New("bind failed")

// Server serves the generated output directory over HTTP. The root is an
// explicit parameter; the process working directory is never changed.
// Shutdown drains in-flight requests before returning.
type Server struct {
	server *http.Server
	addr   string
}

type ServerConfig struct {
	Dir  string
	Port int
}

func NewServer(config ServerConfig) *Server {
	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(config.Dir)))

	addr := fmt.Sprintf("127.0.0.1:%d", config.Port)

	return &Server{
		server: &http.Server{
			Handler: mux,
		},
		addr: addr,
	}
}

// Start binds the listener and begins serving in the background. A bind
// failure (e.g. port already in use) is reported immediately as ErrBind;
// there is no automatic port retry. The server runs until Shutdown.
func (s *Server) Start() (string, error) {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrBind, s.addr, err)
	}

	go func() {
		_ = s.server.Serve(ln)
	}()

	baseURL := "http://" + ln.Addr().String() + "/"
	return baseURL, nil
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
