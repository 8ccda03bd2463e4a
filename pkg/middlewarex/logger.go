package middlewarex

import (
	"log/slog"
	"net/http"

	"rating_widget/pkg/contextx"
	"rating_widget/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Logger кладёт в контекст запроса логгер с trace-id, метод и url.
// Должен стоять после TraceID.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		l := logger(ctx).With(
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldURL, r.URL.Path),
		)

		if traceID, err := contextx.TraceIDFromContext(ctx); err == nil {
			l = l.With(slog.String(logx.FieldTraceID, traceID.String()))
		}

		next.ServeHTTP(w, r.WithContext(contextx.WithLogger(ctx, l)))
	})
}
