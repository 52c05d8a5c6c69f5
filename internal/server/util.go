package server

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// resolveRoot returns the absolute form of dir after checking it is an
// existing directory.
func resolveRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", dir, err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("resolve root: %w", err)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("resolve root: %s is not a directory", abs)
	}
	return abs, nil
}

// browseURL builds the URL an operator opens for the given bound address.
func browseURL(host string, addr net.Addr) *url.URL {
	port := ""
	if ta, ok := addr.(*net.TCPAddr); ok {
		port = fmt.Sprint(ta.Port)
	} else if _, p, err := net.SplitHostPort(addr.String()); err == nil {
		port = p
	}
	if host == "" {
		host = "localhost"
	}
	return &url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(host, port),
	}
}

func notSupported(w http.ResponseWriter, r *http.Request, v interface{}) {
	s := fmt.Sprintf("not supported: %q %v", r.Method, v)
	http.Error(w, s, http.StatusNotImplemented)
}

func toHTTPError(err error) (string, int) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "404 page not found", http.StatusNotFound
	case errors.Is(err, fs.ErrPermission):
		return "403 Forbidden", http.StatusForbidden
	}
	return "500 Internal Server Error", http.StatusInternalServerError
}
