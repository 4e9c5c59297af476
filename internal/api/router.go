package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/quickinvoice/quickinvoice/internal/api/v1"
	"github.com/quickinvoice/quickinvoice/internal/rest/middleware"
)

type Handlers struct {
	Draft  *v1.DraftHandler
	Export *v1.ExportHandler
}

func NewRouter(handlers Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.ErrorHandler(),
	)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Draft routes
	drafts := router.Group("/drafts")
	{
		drafts.POST("", handlers.Draft.CreateDraft)
		drafts.GET("/:id", handlers.Draft.GetDraft)
		drafts.PUT("/:id/fields", handlers.Draft.UpdateHeaderField)
		drafts.POST("/:id/items", handlers.Draft.AddItem)
		drafts.PUT("/:id/items/:index", handlers.Draft.UpdateItemField)
		drafts.GET("/:id/preview", handlers.Draft.GetPreview)
		drafts.POST("/:id/export", handlers.Export.StartExport)
	}

	// Export routes
	exports := router.Group("/exports")
	{
		exports.GET("/:id", handlers.Export.GetExport)
		exports.GET("/:id/download", handlers.Export.DownloadExport)
	}
}
