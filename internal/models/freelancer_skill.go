package models

import (
	"time"

	"github.com/google/uuid"
)

// FreelancerSkill links a freelancer to a skillset. The pair is the primary
// key; rows have no lifecycle of their own and are replaced wholesale on
// freelancer updates.
type FreelancerSkill struct {
	FreelancerID uuid.UUID `gorm:"type:uuid;primarykey" json:"freelancerId"`
	SkillsetID   uuid.UUID `gorm:"type:uuid;primarykey" json:"skillsetId"`
	CreatedAt    time.Time `json:"createdAt"`

	// Relations
	Skillset *Skillset `gorm:"foreignKey:SkillsetID;constraint:OnDelete:CASCADE" json:"skillset,omitempty"`
}
