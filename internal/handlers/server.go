package handlers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"gitlab.com/TitanInd/sprcalc/internal/interfaces"
)

const shutdownTimeout = 5 * time.Second

// Server runs http handler until the context is cancelled
type Server struct {
	addr    string
	handler http.Handler
	log     interfaces.ILogger
}

func NewServer(addr string, handler http.Handler, log interfaces.ILogger) *Server {
	return &Server{
		addr:    addr,
		handler: handler,
		log:     log,
	}
}

func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Infof("http server is listening: %s", listener.Addr())

	err = srv.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return ctx.Err()
	}
	return err
}
