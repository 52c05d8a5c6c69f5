package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/net/netutil"
)

// shutdownGrace bounds how long in-flight requests may run after a stop
// signal before their connections are closed.
const shutdownGrace = time.Second

type Server struct {
	id   string
	cfg  *ServerConfig
	root string
	out  io.Writer

	hs *http.Server
	ln net.Listener
}

// New validates cfg and resolves its root. Nothing is bound until Listen.
func New(cfg *ServerConfig, out io.Writer) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	root, err := resolveRoot(cfg.Root)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = io.Discard
	}

	return &Server{
		id:   uuid.NewString(),
		cfg:  cfg,
		root: root,
		out:  out,
		hs:   &http.Server{Handler: NewStaticHandler(root)},
	}, nil
}

func (s *Server) ID() string {
	return s.id
}

// Root returns the absolute serving root.
func (s *Server) Root() string {
	return s.root
}

func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr(), err)
	}
	if s.cfg.MaxConns > 0 {
		ln = netutil.LimitListener(ln, s.cfg.MaxConns)
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

func (s *Server) URL() *url.URL {
	return browseURL(s.cfg.Host, s.Addr())
}

// Serve accepts connections on the bound listener until Shutdown. Each
// connection is handled on its own goroutine. The listener is closed when
// Serve returns.
func (s *Server) Serve() error {
	if s.ln == nil {
		return errors.New("serve: not listening")
	}
	if err := s.hs.Serve(s.ln); err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for active requests until
// ctx is done, after which remaining connections are closed.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.hs.Shutdown(ctx)
	if err != nil {
		s.hs.Close()
	}
	return err
}

// Run binds, prints the banner, and serves until ctx is cancelled. A bind
// failure is returned before anything is printed.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	s.banner()
	log.Printf("server %v listening at: %s", s.id, s.Addr())

	errc := make(chan error, 1)
	go func() {
		errc <- s.Serve()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	fmt.Fprintln(s.out)
	color.New(color.FgYellow).Fprintln(s.out, "Shutting down server...")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.Shutdown(sctx); err != nil {
		log.Printf("Shutdown: %v", err)
	}

	return <-errc
}

func (s *Server) banner() {
	hi := color.New(color.FgGreen, color.Bold).SprintFunc()

	fmt.Fprintf(s.out, "Serving %s\n", hi(s.root))
	fmt.Fprintf(s.out, "URL: %s\n", hi(s.URL()))
	fmt.Fprintln(s.out, "Press Ctrl+C to stop")
}
