package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ItsNotGoodName/x-tagwm/internal/wm"
	"github.com/ItsNotGoodName/x-tagwm/pkg/sutureext"
)

// NewServer returns the HTTP server as a supervised service.
func NewServer(address string, man *wm.Manager) sutureext.ServiceFunc {
	return sutureext.NewServiceFunc("api.Server", func(ctx context.Context) error {
		srv := &http.Server{
			Addr:    address,
			Handler: NewHandler(man),
		}

		errC := make(chan error, 1)
		go func() { errC <- srv.ListenAndServe() }()

		slog.Info("Listening", "address", address)

		select {
		case err := <-errC:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
			return ctx.Err()
		}
	})
}
