package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradebitsix/Drive-time/internal/core/domain"
	"github.com/tradebitsix/Drive-time/internal/core/ports"
)

// UserHandler exposes the admin-only account management endpoints.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Role     string `json:"role" validate:"required,oneof=admin instructor"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin instructor"`
}

// List returns all accounts.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Create registers a new admin or instructor account.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New account"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.userService.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// UpdateRole changes an account's role.
//
// @Summary      Update user role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  map[string]string
// @Router       /api/users/{id}/role [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.userService.UpdateRole(c.Request().Context(), c.Param("id"), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes an account.
//
// @Summary      Delete user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
