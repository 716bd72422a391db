package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/contactdesk/contactdesk-backend/internal/apierr"
	"github.com/contactdesk/contactdesk-backend/internal/logger"
	"github.com/contactdesk/contactdesk-backend/internal/services"
	"github.com/contactdesk/contactdesk-backend/internal/validation"
)

type AddressHandler struct {
	log            *logger.Logger
	addressService services.AddressService
}

func NewAddressHandler(baseLog *logger.Logger, addressService services.AddressService) *AddressHandler {
	return &AddressHandler{
		log:            baseLog.With("handler", "AddressHandler"),
		addressService: addressService,
	}
}

func (ah *AddressHandler) Create(c *gin.Context) {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		RespondError(c, err)
		return
	}
	var req validation.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.BadRequest("invalid request body"))
		return
	}
	result, err := ah.addressService.Create(c.Request.Context(), contactID, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ah *AddressHandler) Get(c *gin.Context) {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		RespondError(c, err)
		return
	}
	addressID, err := pathID(c, "addressId")
	if err != nil {
		RespondError(c, err)
		return
	}
	result, err := ah.addressService.Get(c.Request.Context(), contactID, addressID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ah *AddressHandler) Update(c *gin.Context) {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		RespondError(c, err)
		return
	}
	addressID, err := pathID(c, "addressId")
	if err != nil {
		RespondError(c, err)
		return
	}
	var req validation.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.BadRequest("invalid request body"))
		return
	}
	result, err := ah.addressService.Update(c.Request.Context(), contactID, addressID, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ah *AddressHandler) Delete(c *gin.Context) {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		RespondError(c, err)
		return
	}
	addressID, err := pathID(c, "addressId")
	if err != nil {
		RespondError(c, err)
		return
	}
	if err := ah.addressService.Delete(c.Request.Context(), contactID, addressID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, "OK")
}

func (ah *AddressHandler) List(c *gin.Context) {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		RespondError(c, err)
		return
	}
	result, err := ah.addressService.List(c.Request.Context(), contactID)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, result)
}
