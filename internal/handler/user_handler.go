package handler

import (
	"net/http"

	"crm-backend/internal/middleware"
	"crm-backend/internal/model"
	"crm-backend/internal/service"
	"crm-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.GET("/me", middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleAnalyst), h.Me)
	}
	userGroup := router.Group("/api/users")
	userGroup.Use(middleware.RequireRole(model.RoleAdmin))
	{
		userGroup.POST("", h.CreateUser)
	}
}

// @Summary      Login
// @Description  Authenticate with email and password, returns a JWT access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body body service.LoginUserRequest true "Credentials"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "Invalid payload"
// @Failure      401 {object} response.Response "Invalid credentials"
// @Router       /api/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	token, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, token))
}

// @Summary      Current User
// @Description  Return the authenticated user's profile
// @Tags         Auth
// @Produce      json
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "Unauthorized"
// @Security     BearerAuth
// @Router       /api/auth/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "missing user context"))
		return
	}

	id, _ := userID.(string)
	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "user not found"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}

// @Summary      Create User
// @Description  Register a new API user (admin only)
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        body body service.CreateUserRequest true "New user"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response "Invalid payload"
// @Failure      401 {object} response.Response "Unauthorized"
// @Security     BearerAuth
// @Router       /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, user))
}
