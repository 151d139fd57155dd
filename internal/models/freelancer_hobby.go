package models

import (
	"time"

	"github.com/google/uuid"
)

// FreelancerHobby links a freelancer to a hobby, keyed by the pair.
type FreelancerHobby struct {
	FreelancerID uuid.UUID `gorm:"type:uuid;primarykey" json:"freelancerId"`
	HobbyID      uuid.UUID `gorm:"type:uuid;primarykey" json:"hobbyId"`
	CreatedAt    time.Time `json:"createdAt"`

	// Relations
	Hobby *Hobby `gorm:"foreignKey:HobbyID;constraint:OnDelete:CASCADE" json:"hobby,omitempty"`
}
