package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/adapter/api/dto"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/service"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/pkg/logger"
)

// BillController handles bill requests: creation with pricing and stock
// effects, payment allocation, edits, deletion and the read surfaces.
type BillController struct {
	billing *service.BillingService
	logger  logger.Logger
}

// NewBillController creates a new BillController.
func NewBillController(billing *service.BillingService, logger logger.Logger) *BillController {
	return &BillController{
		billing: billing,
		logger:  logger,
	}
}

// Create creates a bill
// @Summary Create bill
// @Description Creates a bill with priced line items, deducting stock for sale lines. An empty item list with a positive received amount records a payment; apply_to_pending sweeps it into the shop's outstanding bills oldest first.
// @Tags bills
// @Accept json
// @Produce json
// @Param bill body dto.BillRequest true "Bill data"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bills [post]
func (c *BillController) Create(ctx *gin.Context) {
	var req dto.BillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	b, err := c.billing.CreateBill(ctx, req.ToCreateBillInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBillResponse(b))
}

// Get returns a bill
// @Summary Get bill
// @Description Returns a bill with its shop, user and line items
// @Tags bills
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /bills/{id} [get]
func (c *BillController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	b, err := c.billing.GetBill(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(b))
}

// List lists bills
// @Summary List bills
// @Description Lists bills newest first, paginated
// @Tags bills
// @Produce json
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(10)
// @Success 200 {object} dto.BillListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bills [get]
func (c *BillController) List(ctx *gin.Context) {
	page := queryInt(ctx, "page", 1)
	pageSize := queryInt(ctx, "page_size", 10)
	p := dto.GetPagination(page, pageSize)

	bills, total, err := c.billing.ListBills(ctx, p.PageSize, (p.Page-1)*p.PageSize)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillListResponse(bills, total, p.Page, p.PageSize))
}

// Update edits a bill
// @Summary Update bill
// @Description Edits a bill's received amount, status or notes. A new received amount recomputes pending and status; an explicit status wins and is how a bill is cancelled.
// @Tags bills
// @Accept json
// @Produce json
// @Param id path int true "Bill ID"
// @Param bill body dto.BillUpdateRequest true "Fields to update"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /bills/{id} [put]
func (c *BillController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.BillUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	b, err := c.billing.UpdateBill(ctx, id, req.ToUpdateBillInput())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(b))
}

// Delete removes a bill
// @Summary Delete bill
// @Description Deletes a bill and its line items, restoring every line's quantity to stock
// @Tags bills
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /bills/{id} [delete]
func (c *BillController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.billing.DeleteBill(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("bill deleted", nil))
}

// ListByShop lists a shop's bills
// @Summary List shop bills
// @Description Lists a shop's bills newest first
// @Tags bills
// @Produce json
// @Param id path int true "Shop ID"
// @Success 200 {object} dto.BillListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /shops/{id}/bills [get]
func (c *BillController) ListByShop(ctx *gin.Context) {
	shopID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	bills, err := c.billing.ListBillsByShop(ctx, shopID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillListResponse(bills, len(bills), 1, len(bills)))
}

// ListPending lists a shop's pending bills
// @Summary List pending bills
// @Description Lists a shop's PENDING bills oldest first, the queue a payment would be allocated against
// @Tags bills
// @Produce json
// @Param id path int true "Shop ID"
// @Success 200 {object} dto.BillListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /shops/{id}/bills/pending [get]
func (c *BillController) ListPending(ctx *gin.Context) {
	shopID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	bills, err := c.billing.ListPendingBills(ctx, shopID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillListResponse(bills, len(bills), 1, len(bills)))
}

// Outstanding returns a shop's open debt
// @Summary Shop outstanding
// @Description Returns the sum of a shop's pending amounts
// @Tags bills
// @Produce json
// @Param id path int true "Shop ID"
// @Success 200 {object} dto.OutstandingResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /shops/{id}/outstanding [get]
func (c *BillController) Outstanding(ctx *gin.Context) {
	shopID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	total, err := c.billing.ShopOutstanding(ctx, shopID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OutstandingResponse{ShopID: shopID, Outstanding: total})
}
