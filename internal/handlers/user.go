package handlers

import (
	"net/http"

	"github.com/Paldom/go-todo-service/internal/auth"
	"github.com/Paldom/go-todo-service/internal/dto"

	"github.com/gin-gonic/gin"
)

// UserInfo godoc
// @Summary      Echo the identity forwarded by the gateway
// @Tags         user
// @Produce      json
// @Success      200  {object}  dto.UserInfoResponse
// @Router       /userInfo [get]
func UserInfo(c *gin.Context) {
	u := auth.FromContext(c.Request.Context())
	c.JSON(http.StatusOK, dto.UserInfoResponse{
		PreferredUsername: u.PreferredUsername,
		UserID:            u.UserID,
		Email:             u.Email,
	})
}
