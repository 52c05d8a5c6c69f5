package server

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		cfg   ServerConfig
		valid bool
	}{
		{ServerConfig{Host: DefaultHost, Port: DefaultPort, Root: DefaultRoot}, true},
		{ServerConfig{Host: "", Port: 0, Root: "/tmp"}, true},
		{ServerConfig{Host: "localhost", Port: 65535, Root: "."}, true},
		{ServerConfig{Host: "localhost", Port: 1, Root: ".", MaxConns: 4}, true},
		{ServerConfig{Host: "localhost", Port: -1, Root: "."}, false},
		{ServerConfig{Host: "localhost", Port: 65536, Root: "."}, false},
		{ServerConfig{Host: "localhost", Port: 8000, Root: ""}, false},
		{ServerConfig{Host: "localhost", Port: 8000, Root: ".", MaxConns: -1}, false},
	}

	for i, tc := range tests {
		err := tc.cfg.Validate()
		if tc.valid && err != nil {
			t.Fatalf("[%v] %v: unexpected err: %v", i, tc.cfg, err)
		}
		if !tc.valid && err == nil {
			t.Fatalf("[%v] %v: expected error", i, tc.cfg)
		}
	}
}

func TestAddr(t *testing.T) {
	tests := []struct {
		host     string
		port     int
		expected string
	}{
		{"127.0.0.1", 8000, "127.0.0.1:8000"},
		{"", 8765, ":8765"},
		{"localhost", 0, "localhost:0"},
		{"::1", 8000, "[::1]:8000"},
	}

	for _, tc := range tests {
		c := ServerConfig{Host: tc.host, Port: tc.port}
		if got := c.Addr(); got != tc.expected {
			t.Fatalf("host: %q port: %v want: %v got: %v", tc.host, tc.port, tc.expected, got)
		}
	}
}
