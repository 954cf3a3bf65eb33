package handler

import (
	"errors"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Users *usecase.UserService
}

func NewAdminHandler(users *usecase.UserService) *AdminHandler {
	return &AdminHandler{Users: users}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.AdminUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.ValidationFailed(c, utils.FormatValidationErrors(err))
		return
	}
	query.Normalize()

	users, total, err := h.Users.ListUsers(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}

	utils.Paginated(c, gin.H{"users": out},
		utils.NewPagination(query.Page, query.Limit, total))
}

// DeleteUser removes a user and everything they own. The one path that is
// not scoped to the authenticated user.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID := c.Query("id")
	if userID == "" {
		utils.BadRequest(c, "id query parameter is required")
		return
	}

	if err := h.Users.DeleteUserCascade(c.Request.Context(), userID); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		respondGatewayError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "user deleted", nil)
}
