// Package chiext holds chi middleware shared by HTTP surfaces.
package chiext

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Logger logs requests through slog.
func Logger() func(next http.Handler) http.Handler {
	return middleware.RequestLogger(&logFormatter{})
}

type logFormatter struct{}

// NewLogEntry creates a new LogEntry for the request.
func (l *logFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	attrs := []any{}

	reqID := middleware.GetReqID(r.Context())
	if reqID != "" {
		attrs = append(attrs, slog.String("request", reqID))
	}
	attrs = append(attrs, slog.String("from", r.RemoteAddr))

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	msg := fmt.Sprintf("%s %s://%s%s %s", r.Method, scheme, r.Host, r.RequestURI, r.Proto)

	return &logEntry{
		logFormatter: l,
		attrs:        attrs,
		msg:          msg,
	}
}

type logEntry struct {
	*logFormatter
	attrs []any
	msg   string
}

func (l *logEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	attrs := append(l.attrs,
		slog.Int("status", status),
		slog.Int("bytes", bytes),
		slog.String("elapsed", elapsed.String()),
	)

	if status >= 500 {
		slog.Error(l.msg, attrs...)
	} else {
		slog.Info(l.msg, attrs...)
	}
}

func (l *logEntry) Panic(v interface{}, stack []byte) {
	middleware.PrintPrettyStack(v)
}
