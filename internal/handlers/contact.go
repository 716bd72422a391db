package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactdesk/contactdesk-backend/internal/apierr"
	"github.com/contactdesk/contactdesk-backend/internal/logger"
	"github.com/contactdesk/contactdesk-backend/internal/services"
	"github.com/contactdesk/contactdesk-backend/internal/validation"
)

type ContactHandler struct {
	log            *logger.Logger
	contactService services.ContactService
}

func NewContactHandler(baseLog *logger.Logger, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{
		log:            baseLog.With("handler", "ContactHandler"),
		contactService: contactService,
	}
}

func (ch *ContactHandler) Create(c *gin.Context) {
	var req validation.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.BadRequest("invalid request body"))
		return
	}
	result, err := ch.contactService.Create(c.Request.Context(), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ch *ContactHandler) Get(c *gin.Context) {
	id, err := pathID(c, "contactId")
	if err != nil {
		RespondError(c, err)
		return
	}
	result, err := ch.contactService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ch *ContactHandler) Update(c *gin.Context) {
	id, err := pathID(c, "contactId")
	if err != nil {
		RespondError(c, err)
		return
	}
	var req validation.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.BadRequest("invalid request body"))
		return
	}
	result, err := ch.contactService.Update(c.Request.Context(), id, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ch *ContactHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "contactId")
	if err != nil {
		RespondError(c, err)
		return
	}
	if err := ch.contactService.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, "OK")
}

func (ch *ContactHandler) Search(c *gin.Context) {
	var req validation.SearchContactsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		RespondError(c, apierr.BadRequest("invalid query parameters"))
		return
	}
	page, err := ch.contactService.Search(c.Request.Context(), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	// Search carries paging metadata next to data, so it writes its own
	// envelope instead of going through RespondOK.
	c.JSON(http.StatusOK, page)
}
