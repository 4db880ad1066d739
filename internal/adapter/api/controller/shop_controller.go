package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/adapter/api/dto"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/shop"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/pkg/logger"
)

// ShopController handles shop requests.
type ShopController struct {
	shopRepo shop.Repository
	logger   logger.Logger
}

// NewShopController creates a new ShopController.
func NewShopController(shopRepo shop.Repository, logger logger.Logger) *ShopController {
	return &ShopController{
		shopRepo: shopRepo,
		logger:   logger,
	}
}

// Create creates a shop
// @Summary Create shop
// @Description Creates a shop on a weekday delivery route
// @Tags shops
// @Accept json
// @Produce json
// @Param shop body dto.ShopRequest true "Shop data"
// @Success 201 {object} dto.ShopResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shops [post]
func (c *ShopController) Create(ctx *gin.Context) {
	var req dto.ShopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	s := req.ToShop()
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	if err := c.shopRepo.Create(ctx, s); err != nil {
		c.logger.Error("shop creation failed", "error", err.Error())
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToShopResponse(s))
}

// Get returns a shop
// @Summary Get shop
// @Tags shops
// @Produce json
// @Param id path int true "Shop ID"
// @Success 200 {object} dto.ShopResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /shops/{id} [get]
func (c *ShopController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	s, err := c.shopRepo.FindByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShopResponse(s))
}

// List lists shops
// @Summary List shops
// @Description Lists shops, optionally filtered by delivery day
// @Tags shops
// @Produce json
// @Param delivery_day query string false "Delivery day (MON..SAT)"
// @Success 200 {object} dto.ShopListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /shops [get]
func (c *ShopController) List(ctx *gin.Context) {
	var (
		shops []*shop.Shop
		err   error
	)

	if day := ctx.Query("delivery_day"); day != "" {
		d := shop.DeliveryDay(day)
		if !d.Valid() {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				http.StatusBadRequest, "invalid delivery day", "delivery_day must be one of MON, TUE, WED, THU, FRI, SAT"))
			return
		}
		shops, err = c.shopRepo.FindByDeliveryDay(ctx, d)
	} else {
		shops, err = c.shopRepo.FindAll(ctx)
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShopListResponse(shops))
}

// Update edits a shop
// @Summary Update shop
// @Tags shops
// @Accept json
// @Produce json
// @Param id path int true "Shop ID"
// @Param shop body dto.ShopRequest true "Shop data"
// @Success 200 {object} dto.ShopResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /shops/{id} [put]
func (c *ShopController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ShopRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	s, err := c.shopRepo.FindByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	s.Name = req.Name
	s.OwnerName = req.OwnerName
	s.Phone = req.Phone
	s.Address = req.Address
	s.DeliveryDay = shop.DeliveryDay(req.DeliveryDay)
	s.UpdatedAt = time.Now()

	if err := c.shopRepo.Update(ctx, s); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShopResponse(s))
}

// Delete removes a shop
// @Summary Delete shop
// @Tags shops
// @Produce json
// @Param id path int true "Shop ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /shops/{id} [delete]
func (c *ShopController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.shopRepo.Delete(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("shop deleted", nil))
}
