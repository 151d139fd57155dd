package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rwidjojo/freelancer-directory-api/internal/dto"
	apierrors "github.com/rwidjojo/freelancer-directory-api/internal/errors"
	"github.com/rwidjojo/freelancer-directory-api/internal/services"
	"github.com/rwidjojo/freelancer-directory-api/internal/utils"
)

// MasterHandler serves the skillset and hobby endpoints; one instance per
// master table.
type MasterHandler struct {
	service *services.MasterService
}

func NewMasterHandler(service *services.MasterService) *MasterHandler {
	return &MasterHandler{service: service}
}

// List returns a page of master records, optionally filtered by a name
// substring
func (h *MasterHandler) List(c *gin.Context) {
	page, pageSize := utils.GetPageParams(c)

	items, total, err := h.service.List(services.ListMastersInput{
		Term:     c.Query("term"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedResult(dto.ToMasterDTOs(items), total, page, pageSize))
}

// Create adds a master record
func (h *MasterHandler) Create(c *gin.Context) {
	var req dto.MasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	m, err := h.service.Create(req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMasterDTO(*m))
}

// Rename changes a master record's name
func (h *MasterHandler) Rename(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.MasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.service.Rename(id, req.Name); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete removes a master record and its link rows
func (h *MasterHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
