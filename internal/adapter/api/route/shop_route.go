package route

import (
	"github.com/gin-gonic/gin"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/adapter/api/controller"
)

// RegisterShopRoutes registers the shop endpoints, including the shop-scoped
// pricing surface.
func RegisterShopRoutes(r *gin.RouterGroup, shopController *controller.ShopController, productController *controller.ProductController) {
	shops := r.Group("/shops")
	{
		shops.POST("", shopController.Create)
		shops.GET("", shopController.List)
		shops.GET("/:id", shopController.Get)
		shops.PUT("/:id", shopController.Update)
		shops.DELETE("/:id", shopController.Delete)

		shops.PUT("/:id/prices", productController.UpsertShopPrice)
		shops.GET("/:id/prices", productController.ListShopPrices)
		shops.GET("/:id/products/:productId/price", productController.EffectivePrice)
	}
}
