package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rwidjojo/freelancer-directory-api/internal/dto"
	apierrors "github.com/rwidjojo/freelancer-directory-api/internal/errors"
	"github.com/rwidjojo/freelancer-directory-api/internal/services"
	"github.com/rwidjojo/freelancer-directory-api/internal/utils"
)

type FreelancerHandler struct {
	service *services.FreelancerService
}

func NewFreelancerHandler(service *services.FreelancerService) *FreelancerHandler {
	return &FreelancerHandler{service: service}
}

// List returns a page of freelancers. Archived records are excluded unless
// includeArchived=true; term matches username/email, skill and hobby filter
// on attached master records.
func (h *FreelancerHandler) List(c *gin.Context) {
	page, pageSize := utils.GetPageParams(c)
	includeArchived, _ := strconv.ParseBool(c.DefaultQuery("includeArchived", "false"))

	items, total, err := h.service.List(services.ListFreelancersInput{
		Term:            c.Query("term"),
		Skill:           c.Query("skill"),
		Hobby:           c.Query("hobby"),
		IncludeArchived: includeArchived,
		Page:            page,
		PageSize:        pageSize,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPagedResult(dto.ToFreelancerDTOs(items), total, page, pageSize))
}

// Get returns a single freelancer by id
func (h *FreelancerHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	f, err := h.service.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFreelancerDTO(*f))
}

// Create adds a new freelancer with its skill/hobby attachments
func (h *FreelancerHandler) Create(c *gin.Context) {
	var req dto.FreelancerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input, err := freelancerInput(req)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	f, err := h.service.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFreelancerDTO(*f))
}

// Update replaces a freelancer's fields and both attachment sets
func (h *FreelancerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.FreelancerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input, err := freelancerInput(req)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Update(id, input); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Patch toggles the archive flag
func (h *FreelancerHandler) Patch(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsArchived == nil {
		apierrors.BadRequest(c, "Provide 'isArchived' boolean field")
		return
	}

	if err := h.service.SetArchived(id, *req.IsArchived); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete removes a freelancer and its link rows
func (h *FreelancerHandler) Delete(c *gin.Context) {
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

func freelancerInput(req dto.FreelancerRequest) (services.FreelancerInput, error) {
	skillRefs, err := masterRefs(req.SkillsetIDs, req.Skillsets, "skillsetIds")
	if err != nil {
		return services.FreelancerInput{}, err
	}
	hobbyRefs, err := masterRefs(req.HobbyIDs, req.Hobbies, "hobbyIds")
	if err != nil {
		return services.FreelancerInput{}, err
	}
	return services.FreelancerInput{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		IsArchived:  req.IsArchived,
		SkillRefs:   skillRefs,
		HobbyRefs:   hobbyRefs,
	}, nil
}

func masterRefs(ids []uuid.UUID, names []string, field string) ([]services.MasterRef, error) {
	refs := make([]services.MasterRef, 0, len(ids)+len(names))
	for _, id := range ids {
		if id == uuid.Nil {
			return nil, fmt.Errorf("%s must not contain a zero id", field)
		}
		refs = append(refs, services.RefByID(id))
	}
	for _, name := range names {
		refs = append(refs, services.RefByName(name))
	}
	return refs, nil
}
