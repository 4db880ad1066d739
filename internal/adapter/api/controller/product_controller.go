package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/adapter/api/dto"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/product"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/pkg/logger"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/pkg/money"
)

// ProductController handles catalog, per-shop pricing and stock requests.
type ProductController struct {
	productRepo product.Repository
	logger      logger.Logger
}

// NewProductController creates a new ProductController.
func NewProductController(productRepo product.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create creates a product
// @Summary Create product
// @Description Creates a catalog product with a zero stock row
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Product data"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	p := req.ToProduct()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := c.productRepo.Create(ctx, p); err != nil {
		c.logger.Error("product creation failed", "error", err.Error())
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Get returns a product
// @Summary Get product
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	p, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List lists products
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	products, err := c.productRepo.FindAll(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// Update edits a product
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body dto.ProductRequest true "Product data"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	p, err := c.productRepo.FindByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	p.Name = req.Name
	p.Unit = req.Unit
	p.DefaultRate = req.DefaultRate
	p.GSTPercent = req.GSTPercent
	p.UpdatedAt = time.Now()

	if err := c.productRepo.Update(ctx, p); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete removes a product
// @Summary Delete product
// @Description Deletes a product together with its price overrides and stock row
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.productRepo.Delete(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("product deleted", nil))
}

// UpsertShopPrice sets a shop's price override
// @Summary Set shop price
// @Description Creates or replaces a shop's price override for a product
// @Tags pricing
// @Accept json
// @Produce json
// @Param id path int true "Shop ID"
// @Param price body dto.ShopPriceRequest true "Price override"
// @Success 200 {object} dto.ShopPriceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /shops/{id}/prices [put]
func (c *ProductController) UpsertShopPrice(ctx *gin.Context) {
	shopID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ShopPriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if _, err := c.productRepo.FindByID(ctx, req.ProductID); err != nil {
		respondError(ctx, err)
		return
	}

	sp := &product.ShopPrice{
		ShopID:    shopID,
		ProductID: req.ProductID,
		Rate:      req.Rate,
		CreatedAt: time.Now(),
	}
	if err := c.productRepo.UpsertShopPrice(ctx, sp); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShopPriceResponse(sp))
}

// ListShopPrices lists a shop's price overrides
// @Summary List shop prices
// @Tags pricing
// @Produce json
// @Param id path int true "Shop ID"
// @Success 200 {array} dto.ShopPriceResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /shops/{id}/prices [get]
func (c *ProductController) ListShopPrices(ctx *gin.Context) {
	shopID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	prices, err := c.productRepo.ListShopPrices(ctx, shopID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShopPriceListResponse(prices))
}

// EffectivePrice returns the server's pricing suggestion
// @Summary Effective price
// @Description Returns the effective rate for a (shop, product) pair, the shop override when present and the default rate otherwise, with the GST percent split a sale line would carry
// @Tags pricing
// @Produce json
// @Param id path int true "Shop ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} dto.EffectivePriceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /shops/{id}/products/{productId}/price [get]
func (c *ProductController) EffectivePrice(ctx *gin.Context) {
	shopID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	productID, ok := parseIDParam(ctx, "productId")
	if !ok {
		return
	}

	p, err := c.productRepo.FindByID(ctx, productID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	rate, err := c.productRepo.PriceFor(ctx, shopID, productID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	half := money.Half(p.GSTPercent)
	ctx.JSON(http.StatusOK, dto.EffectivePriceResponse{
		ShopID:      shopID,
		ProductID:   productID,
		Rate:        rate,
		SGSTPercent: half,
		CGSTPercent: half,
	})
}

// GetStock returns a product's stock
// @Summary Get stock
// @Tags stock
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.StockResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id}/stock [get]
func (c *ProductController) GetStock(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	st, err := c.productRepo.GetStock(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockResponse(st))
}

// ListStock lists all stock rows
// @Summary List stock
// @Tags stock
// @Produce json
// @Success 200 {array} dto.StockResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stock [get]
func (c *ProductController) ListStock(ctx *gin.Context) {
	stocks, err := c.productRepo.ListStock(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockListResponse(stocks))
}

// SetStock writes an absolute stock quantity
// @Summary Set stock
// @Description Writes an absolute stock quantity, clamped at zero
// @Tags stock
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param stock body dto.StockUpdateRequest true "Quantity"
// @Success 200 {object} dto.StockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id}/stock [put]
func (c *ProductController) SetStock(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.StockUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.productRepo.SetStockQuantity(ctx, id, req.Quantity); err != nil {
		respondError(ctx, err)
		return
	}

	st, err := c.productRepo.GetStock(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockResponse(st))
}

// AdjustStock applies a signed stock delta
// @Summary Adjust stock
// @Description Adds a signed delta to a product's stock quantity, clamped at zero
// @Tags stock
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param adjustment body dto.StockAdjustRequest true "Signed delta"
// @Success 200 {object} dto.StockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id}/stock/adjust [post]
func (c *ProductController) AdjustStock(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.StockAdjustRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.productRepo.AdjustStock(ctx, id, req.Delta); err != nil {
		respondError(ctx, err)
		return
	}

	st, err := c.productRepo.GetStock(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStockResponse(st))
}
