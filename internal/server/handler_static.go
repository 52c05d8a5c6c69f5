package server

import (
	"net/http"
	"path"
	"strings"
)

const indexPage = "/index.html"

var noCacheHeaders = map[string]string{
	"Cache-Control": "no-store, no-cache, must-revalidate, max-age=0",
	"Pragma":        "no-cache",
	"Expires":       "0",
}

func setNoCache(h http.Header) {
	for k, v := range noCacheHeaders {
		h.Set(k, v)
	}
}

// noCacheWriter stamps the no-cache headers right before the status line is
// written, after the file handler has set (or cleared) its own headers.
type noCacheWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *noCacheWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		setNoCache(w.Header())
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *noCacheWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *noCacheWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// StaticHandler serves files under root and disables caching on every
// response.
type StaticHandler struct {
	fs http.FileSystem
	fh http.Handler
}

func NewStaticHandler(root string) *StaticHandler {
	fs := http.Dir(root)
	return &StaticHandler{
		fs: fs,
		fh: http.FileServer(fs),
	}
}

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setNoCache(w.Header())
	nw := &noCacheWriter{ResponseWriter: w}

	switch {
	case r.Method != http.MethodGet && r.Method != http.MethodHead:
		nw.Header().Set("Allow", "GET, HEAD")
		notSupported(nw, r, r.URL.Path)
		return
	case h.serveIndex(nw, r):
		return
	default:
		h.fh.ServeHTTP(nw, r)
	}
}

// serveIndex answers an explicit request for an index page with the page
// itself, or an error if it is missing. http.FileServer would redirect it to
// the directory instead.
func (h *StaticHandler) serveIndex(w http.ResponseWriter, r *http.Request) bool {
	if !strings.HasSuffix(r.URL.Path, indexPage) {
		return false
	}
	name := path.Clean("/" + r.URL.Path)

	f, err := h.fs.Open(name)
	if err != nil {
		msg, code := toHTTPError(err)
		http.Error(w, msg, code)
		return true
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil || fi.IsDir() {
		return false
	}

	http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
	return true
}
