package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/saulo-duarte/trivia-api/internal/config"
	"github.com/sirupsen/logrus"
)

// Recoverer turns a panic into the 500 error envelope.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			config.WithContext(r.Context()).WithFields(logrus.Fields{
				"panic": rvr,
				"stack": string(debug.Stack()),
			}).Error("Recovered from panic")

			config.InternalServerError(w)
		}()

		next.ServeHTTP(w, r)
	})
}
