// File: handlers/user.go
package handlers

import (
	"net/http"

	"boatify/middleware"
	"boatify/models"
	"boatify/services/user"
	"boatify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the auth and profile endpoints.
type UserHandler struct {
	UserService user.UserService
}

// RegisterHandler handles POST /api/auth/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.UserService.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := h.UserService.Authenticate(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler handles GET /api/profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	usr, err := h.UserService.GetProfile(actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateProfileHandler handles PUT /api/profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	var input models.ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	usr, err := h.UserService.UpdateProfile(actor.UserID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// GetAllUsersHandler handles GET /api/admin/users.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByIDHandler handles GET /api/admin/users/:id.
func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	usr, err := h.UserService.GetUserByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// AdminUpdateUserHandler handles PUT /api/admin/users/:id.
func (h *UserHandler) AdminUpdateUserHandler(c *gin.Context) {
	var input models.AdminUserUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	usr, err := h.UserService.AdminUpdateUser(c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUserHandler handles DELETE /api/admin/users/:id.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.UserService.DeleteUser(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
