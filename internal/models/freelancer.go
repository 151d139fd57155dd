package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Freelancer is the aggregate root of the directory. Skills and hobbies are
// attached through explicit join rows so the link tables can be queried and
// replaced directly.
type Freelancer struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Username    string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"email"`
	PhoneNumber string    `gorm:"type:varchar(30)" json:"phoneNumber"`
	IsArchived  bool      `gorm:"not null;default:false" json:"isArchived"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	SkillLinks []FreelancerSkill `gorm:"foreignKey:FreelancerID" json:"skillLinks,omitempty"`
	HobbyLinks []FreelancerHobby `gorm:"foreignKey:FreelancerID" json:"hobbyLinks,omitempty"`
}

func (f *Freelancer) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
