package server

import (
	"fmt"
	"net"
	"strconv"
)

const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 8000
	DefaultRoot = "."
)

type ServerConfig struct {
	Host string
	Port int

	Root string

	// MaxConns caps concurrently accepted connections. Zero means unbounded.
	MaxConns int
}

func (c *ServerConfig) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", c.Port)
	}
	if c.MaxConns < 0 {
		return fmt.Errorf("invalid max conns %d: must not be negative", c.MaxConns)
	}
	if c.Root == "" {
		return fmt.Errorf("root directory not specified")
	}
	return nil
}

// Addr returns the host:port pair to bind.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ServerConfig) String() string {
	return fmt.Sprintf("host=%s port=%d root=%s max-conns=%d", c.Host, c.Port, c.Root, c.MaxConns)
}

// Version is set at build time with -ldflags "-X".
var Version = "dev"
