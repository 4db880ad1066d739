package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/adapter/api/dto"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/bill"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/product"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/shop"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/user"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/service"
)

// respondError translates domain and service errors into HTTP replies.
// Validation failures carry every failing field; unknown errors stay opaque.
func respondError(ctx *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "validation failed", verr.Error()))
		return
	}

	switch {
	case errors.Is(err, bill.ErrNotFound),
		errors.Is(err, shop.ErrNotFound),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, product.ErrStockNotFound),
		errors.Is(err, user.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(
			http.StatusNotFound, "resource not found", err.Error()))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError, "internal error", err.Error()))
	}
}

// respondBindError replies 400 for a request body that failed binding,
// listing every failing field when the failure came from struct validation.
func respondBindError(ctx *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, len(verrs))
		for i, fe := range verrs {
			parts[i] = fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag())
		}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "invalid request body", strings.Join(parts, "; ")))
		return
	}
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		http.StatusBadRequest, "invalid request body", err.Error()))
}

// queryInt reads an integer query parameter, falling back to a default.
func queryInt(ctx *gin.Context, name string, defaultValue int) int {
	raw := ctx.Query(name)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

// parseIDParam reads a positive int64 path parameter, replying 400 itself
// when the value is malformed.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "invalid path parameter", name+" must be a positive integer"))
		return 0, false
	}
	return id, true
}
