package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	"syngen/internal/api/handler"
	"syngen/pkg/router"
)

// RegisterRoutes wires the dataset handler and the swagger UI into r
func RegisterRoutes(r *router.Router, h *handler.DatasetHandler) {
	r.GET("/", h.Index)
	r.GET("/api/v1/topics", h.ListTopics)
	r.POST("/api/v1/datasets", h.CreateDataset)
	r.GET("/api/v1/datasets/export", h.ExportDataset)
	// Swagger UI last, wildcards match in registration order
	r.GET("/swagger/*", httpSwagger.WrapHandler.ServeHTTP)
}
