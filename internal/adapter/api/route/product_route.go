package route

import (
	"github.com/gin-gonic/gin"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/adapter/api/controller"
)

// RegisterProductRoutes registers the catalog and stock endpoints.
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id", productController.Delete)

		products.GET("/:id/stock", productController.GetStock)
		products.PUT("/:id/stock", productController.SetStock)
		products.POST("/:id/stock/adjust", productController.AdjustStock)
	}

	r.GET("/stock", productController.ListStock)
}
