package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/category"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/status"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

const shutdownTimeout = 30 * time.Second

type Rest struct {
	Logger    *logrus.Logger
	Port      string
	StaticDir string
	Service   *service.Service
	Storage   *storage.Storage
}

// Handler builds the full HTTP handler: the huma API, the static client
// when StaticDir exists, and request logging around both.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	api := humago.New(mux, huma.DefaultConfig("Finance Tracker API", "1.0.0"))
	api.UseMiddleware(logging.OperationMiddleware)

	status.NewHandler(r.Storage).Register(api)
	category.NewListCategoriesHandler(r.Service.Category).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewBulkCreateTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewDeleteTransactionsHandler(r.Service.Transaction).Register(api)

	if r.StaticDir != "" {
		if info, err := os.Stat(r.StaticDir); err == nil && info.IsDir() {
			mux.Handle("GET /", http.FileServer(http.Dir(r.StaticDir)))
		} else {
			r.Logger.WithField("staticDir", r.StaticDir).Warn("HttpServer.Handler.static dir missing, not serving it")
		}
	}

	return logging.LoggingWrapper("Api", r.Logger, mux)
}

// Serve listens until ctx is done, then shuts down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		r.Logger.Info("HttpServer.Serve.shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	return err
}
