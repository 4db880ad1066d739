package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/adapter/api/dto"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/user"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/pkg/logger"
)

// UserController handles user requests. Users are plain records referenced
// by bills; credential handling lives outside this service.
type UserController struct {
	userRepo user.Repository
	logger   logger.Logger
}

// NewUserController creates a new UserController.
func NewUserController(userRepo user.Repository, logger logger.Logger) *UserController {
	return &UserController{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create creates a user
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UserRequest true "User data"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.UserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	u := req.ToUser()
	u.CreatedAt = time.Now()

	if err := c.userRepo.Create(ctx, u); err != nil {
		c.logger.Error("user creation failed", "error", err.Error())
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// Get returns a user
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	u, err := c.userRepo.FindByID(ctx, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// List lists users
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.userRepo.FindAll(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users))
}
