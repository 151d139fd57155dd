package dto

import (
	"github.com/google/uuid"
	"github.com/rwidjojo/freelancer-directory-api/internal/repository"
)

// MasterRequest is the create/rename payload for skillsets and hobbies.
type MasterRequest struct {
	Name string `json:"name" binding:"required"`
}

// MasterDTO represents a skillset or hobby in API responses
type MasterDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ToMasterDTO converts a repository row
func ToMasterDTO(m repository.MasterData) MasterDTO {
	return MasterDTO{ID: m.ID, Name: m.Name}
}

// ToMasterDTOs converts a slice of repository rows
func ToMasterDTOs(rows []repository.MasterData) []MasterDTO {
	out := make([]MasterDTO, len(rows))
	for i, m := range rows {
		out[i] = ToMasterDTO(m)
	}
	return out
}
