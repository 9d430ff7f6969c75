package log

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/talentlink/marketplace/pkg/requestid"
	"go.uber.org/zap"
)

// Logger returns a chi middleware that logs each completed request on the
// given named logger. Health checks are logged at debug to keep the output
// readable.
func Logger(l *zap.Logger, name string) func(next http.Handler) http.Handler {
	if l == nil {
		panic("log.Logger received a nil *zap.Logger")
	}

	logger := l.WithOptions(zap.AddCallerSkip(1)).Named(name)

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			t1 := time.Now()
			requestID := requestid.FromRequest(r)

			defer func() {
				latency := time.Since(t1)
				statusCode := ww.Status()

				fields := []zap.Field{
					zap.String("type", "http_request"),
					zap.String("request_id", requestID),
					zap.String("http_method", r.Method),
					zap.String("http_path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr),
					zap.Int("http_status_code", statusCode),
					zap.Int64("response_bytes", int64(ww.BytesWritten())),
					zap.Duration("latency", latency),
					zap.String("user_agent", r.UserAgent()),
				}

				msg := fmt.Sprintf("HTTP request completed: %s", r.URL.Path)

				switch {
				case statusCode >= 500:
					logger.Error(msg, fields...)
				case statusCode >= 400:
					logger.Warn(msg, fields...)
				default:
					if isHealthCheck(r.Method, r.URL.Path) {
						logger.Debug(msg, fields...)
					} else {
						logger.Info(msg, fields...)
					}
				}
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

func isHealthCheck(method string, path string) bool {
	return method == http.MethodGet && path == "/api/v1/health"
}
