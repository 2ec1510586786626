package middleware

import (
	"fmt"
	"net/http"
	"runtime"

	"github.com/fusionprintdesign/fusionsite/internal/logging"
)

// Recoverer ensures that panics inside any downstream handler do not crash
// the process. It logs the panic and returns a plain 500.
func Recoverer(logger logging.Logger) func(http.Handler) http.Handler {
	logger = logger.WithComponent("panic-recovery")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				buf := make([]byte, 8192)
				n := runtime.Stack(buf, false)

				logger.Error(r.Context(), fmt.Errorf("panic: %v", rec), "panic recovered in HTTP handler",
					"method", r.Method,
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
					"stack_trace", string(buf[:n]))

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
