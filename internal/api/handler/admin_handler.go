package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userportal/registration-system/internal/core/ports"
)

// AdminHandler serves the admin-only endpoints.
type AdminHandler struct {
	userService ports.UserService
}

func NewAdminHandler(userService ports.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

type listUsersResponse struct {
	Users []userResponse `json:"users"`
	Count int            `json:"count"`
}

// ListUsers returns all registered users, newest first, with password
// digests stripped.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listUsersResponse{
		Users: make([]userResponse, 0, len(users)),
		Count: len(users),
	}
	for _, u := range users {
		resp.Users = append(resp.Users, toUserResponse(u))
	}

	return c.JSON(http.StatusOK, resp)
}
