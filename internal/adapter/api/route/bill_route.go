package route

import (
	"github.com/gin-gonic/gin"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/adapter/api/controller"
)

// RegisterBillRoutes registers the bill endpoints.
func RegisterBillRoutes(r *gin.RouterGroup, billController *controller.BillController) {
	bills := r.Group("/bills")
	{
		bills.POST("", billController.Create)
		bills.GET("", billController.List)
		bills.GET("/:id", billController.Get)
		bills.PUT("/:id", billController.Update)
		bills.DELETE("/:id", billController.Delete)
	}
}

// RegisterShopBillRoutes registers the per-shop bill read endpoints.
func RegisterShopBillRoutes(r *gin.RouterGroup, billController *controller.BillController) {
	shops := r.Group("/shops")
	{
		shops.GET("/:id/bills", billController.ListByShop)
		shops.GET("/:id/bills/pending", billController.ListPending)
		shops.GET("/:id/outstanding", billController.Outstanding)
	}
}
