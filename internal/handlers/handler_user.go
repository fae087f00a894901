package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tillworks/tilldesk/internal/core/domain"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
	"github.com/tillworks/tilldesk/internal/middleware"
)

// userHandler handles HTTP requests for user management. All routes are
// admin-only.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// registerUserRoutes registers the admin-only user management routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := &userHandler{userService: userService}

	users := rg.Group("/users", middleware.RequireRole(domain.RoleAdmin))
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
	}
}

// createUser godoc
// @Summary Create a user
// @Description Creates a login user; requires the ADMIN role
// @Tags users
// @Accept  json
// @Produce  json
// @Param   user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 409 {object} map[string]string "Username already taken"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	actorID, ok := actingUser(c)
	if !ok {
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// getUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List users
// @Tags users
// @Produce  json
// @Success 200 {array} dto.UserResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// deleteUser godoc
// @Summary Delete a user
// @Description Removes a login user; requires the ADMIN role. Self-deletion is refused.
// @Tags users
// @Produce  json
// @Param   id path string true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 409 {object} map[string]string "Cannot delete your own account"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	actorID, ok := actingUser(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id"), actorID); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

// updateUser godoc
// @Summary Update a user
// @Description Overwrites a user's fields; an empty password keeps the current one
// @Tags users
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   user body dto.UpdateUserRequest true "User details"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}
	actorID, ok := actingUser(c)
	if !ok {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
