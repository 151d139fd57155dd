package dto

import (
	"github.com/google/uuid"
	"github.com/rwidjojo/freelancer-directory-api/internal/models"
	"github.com/rwidjojo/freelancer-directory-api/internal/utils"
)

// FreelancerRequest is the create/update payload. Skills and hobbies may be
// referenced by master-record id or by free-text name; unseen names are
// created on the fly.
type FreelancerRequest struct {
	Username    string      `json:"username" binding:"required"`
	Email       string      `json:"email" binding:"required"`
	PhoneNumber string      `json:"phoneNumber"`
	IsArchived  bool        `json:"isArchived"`
	Skillsets   []string    `json:"skillsets"`
	SkillsetIDs []uuid.UUID `json:"skillsetIds"`
	Hobbies     []string    `json:"hobbies"`
	HobbyIDs    []uuid.UUID `json:"hobbyIds"`
}

// ArchiveRequest is the PATCH payload; the pointer rejects a missing field.
type ArchiveRequest struct {
	IsArchived *bool `json:"isArchived" binding:"required"`
}

// FreelancerDTO represents a freelancer in API responses, with link rows
// flattened to plain {id, name} pairs.
type FreelancerDTO struct {
	ID          uuid.UUID   `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phoneNumber"`
	IsArchived  bool        `json:"isArchived"`
	Skillsets   []MasterDTO `json:"skillsets"`
	Hobbies     []MasterDTO `json:"hobbies"`
}

// PagedResult bundles a page of items with its paging metadata.
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// NewPagedResult builds a PagedResult, deriving totalPages.
func NewPagedResult[T any](items []T, totalCount int64, page, pageSize int) PagedResult[T] {
	return PagedResult[T]{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: utils.TotalPages(totalCount, pageSize),
	}
}

// ToFreelancerDTO converts a Freelancer model to FreelancerDTO
func ToFreelancerDTO(f models.Freelancer) FreelancerDTO {
	dto := FreelancerDTO{
		ID:          f.ID,
		Username:    f.Username,
		Email:       f.Email,
		PhoneNumber: f.PhoneNumber,
		IsArchived:  f.IsArchived,
		Skillsets:   make([]MasterDTO, 0, len(f.SkillLinks)),
		Hobbies:     make([]MasterDTO, 0, len(f.HobbyLinks)),
	}
	for _, link := range f.SkillLinks {
		if link.Skillset != nil {
			dto.Skillsets = append(dto.Skillsets, MasterDTO{ID: link.Skillset.ID, Name: link.Skillset.Name})
		}
	}
	for _, link := range f.HobbyLinks {
		if link.Hobby != nil {
			dto.Hobbies = append(dto.Hobbies, MasterDTO{ID: link.Hobby.ID, Name: link.Hobby.Name})
		}
	}
	return dto
}

// ToFreelancerDTOs converts a slice of models
func ToFreelancerDTOs(freelancers []models.Freelancer) []FreelancerDTO {
	out := make([]FreelancerDTO, len(freelancers))
	for i, f := range freelancers {
		out[i] = ToFreelancerDTO(f)
	}
	return out
}
