package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickinvoice/quickinvoice/internal/api"
	v1 "github.com/quickinvoice/quickinvoice/internal/api/v1"
	"github.com/quickinvoice/quickinvoice/internal/config"
	"github.com/quickinvoice/quickinvoice/internal/logger"
	"github.com/quickinvoice/quickinvoice/internal/pdfgen"
	"github.com/quickinvoice/quickinvoice/internal/repository/memory"
	"github.com/quickinvoice/quickinvoice/internal/service"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Repositories
			memory.NewDraftRepository,
			memory.NewExportRepository,

			// PDF renderer
			pdfgen.NewGofpdfRenderer,

			// Services
			service.NewServiceParams,
			service.NewDraftService,
			service.NewExportService,

			// API
			provideHandlers,
			api.NewRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideHandlers(
	log *logger.Logger,
	draftService service.DraftService,
	exportService service.ExportService,
) api.Handlers {
	return api.Handlers{
		Draft:  v1.NewDraftHandler(draftService, log),
		Export: v1.NewExportHandler(exportService, log),
	}
}

func startServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server on %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
