package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkandimagination/artstore/internal/domain/model"
	"github.com/inkandimagination/artstore/internal/server/http/dto"
)

// ContactHandler manages the public contact form and its admin views.
type ContactHandler struct {
	facade ContactFacade
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(facade ContactFacade) *ContactHandler {
	return &ContactHandler{facade: facade}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	contact, err := h.facade.SubmitContact(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.FromContact(contact)))
}

// List handles GET /api/contact.
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.facade.ContactMessages(c.Request.Context(), model.ContactStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.ContactResponse, 0, len(contacts))
	for i := range contacts {
		response = append(response, dto.FromContact(&contacts[i]))
	}
	c.JSON(http.StatusOK, dto.OKList(response, len(response)))
}

// Get handles GET /api/contact/:id. Reading a new message marks it read.
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid contact id")
		return
	}

	contact, err := h.facade.ContactMessage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromContact(contact)))
}

// UpdateStatus handles PUT /api/contact/:id/status.
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid contact id")
		return
	}

	var req dto.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	contact, err := h.facade.UpdateContactStatus(c.Request.Context(), id, model.ContactStatus(req.Status), req.Replied)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.FromContact(contact)))
}
