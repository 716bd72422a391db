package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/contactdesk/contactdesk-backend/internal/apierr"
	"github.com/contactdesk/contactdesk-backend/internal/logger"
	"github.com/contactdesk/contactdesk-backend/internal/services"
	"github.com/contactdesk/contactdesk-backend/internal/validation"
)

type UserHandler struct {
	log         *logger.Logger
	userService services.UserService
}

func NewUserHandler(baseLog *logger.Logger, userService services.UserService) *UserHandler {
	return &UserHandler{
		log:         baseLog.With("handler", "UserHandler"),
		userService: userService,
	}
}

func (uh *UserHandler) GetCurrent(c *gin.Context) {
	result, err := uh.userService.GetCurrent(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (uh *UserHandler) UpdateCurrent(c *gin.Context) {
	var req validation.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.BadRequest("invalid request body"))
		return
	}
	result, err := uh.userService.UpdateCurrent(c.Request.Context(), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}
