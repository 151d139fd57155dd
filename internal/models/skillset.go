package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skillset is a master record shared by many freelancers. Names are unique;
// case-insensitive uniqueness is enforced by the service layer on top of the
// index.
type Skillset struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Skillset) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
