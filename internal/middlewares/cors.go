package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
)

const (
	allowedHeaders = "Content-Type, Authorization"
	allowedMethods = "GET, POST, DELETE"
)

var corsHandler = cors.Handler(cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
	AllowedHeaders: []string{"Content-Type", "Authorization"},
	MaxAge:         300,
})

func CorsMiddleware(next http.Handler) http.Handler {
	return corsHandler(next)
}

// AllowHeaders stamps the allowed headers and methods on every response, preflight or not.
// The headers are set again when the status is written because the CORS handler rewrites
// them on preflight requests.
func AllowHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setAllowHeaders(w.Header())
		next.ServeHTTP(&allowHeadersWriter{ResponseWriter: w}, r)
	})
}

func setAllowHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Headers", allowedHeaders)
	h.Set("Access-Control-Allow-Methods", allowedMethods)
}

type allowHeadersWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *allowHeadersWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		setAllowHeaders(w.Header())
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *allowHeadersWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *allowHeadersWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
