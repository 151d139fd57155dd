package repository

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rwidjojo/freelancer-directory-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFreelancerRepository is a GORM implementation of FreelancerRepository
type GormFreelancerRepository struct {
	db *gorm.DB
}

// NewFreelancerRepository creates a new FreelancerRepository
func NewFreelancerRepository(db *gorm.DB) FreelancerRepository {
	return &GormFreelancerRepository{db: db}
}

// Create persists the freelancer and its link rows in one transaction
func (r *GormFreelancerRepository) Create(f *models.Freelancer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(f).Error; err != nil {
			return err
		}
		return createLinks(tx, f)
	})
}

// FindByID finds a freelancer with both link collections and their master
// records preloaded
func (r *GormFreelancerRepository) FindByID(id uuid.UUID) (*models.Freelancer, error) {
	var f models.Freelancer
	if err := r.db.
		Preload("SkillLinks.Skillset").
		Preload("HobbyLinks.Hobby").
		First(&f, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// FindByUsernameOrEmail finds any freelancer holding the username or email,
// optionally excluding one ID (the record being updated)
func (r *GormFreelancerRepository) FindByUsernameOrEmail(username, email string, excludeID uuid.UUID) (*models.Freelancer, error) {
	query := r.db.Where("username = ? OR email = ?", username, email)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var f models.Freelancer
	if err := query.First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// List retrieves freelancers with filtering and pagination. The count always
// reflects the filtered set before the page is cut.
func (r *GormFreelancerRepository) List(filter FreelancerFilter) ([]models.Freelancer, int64, error) {
	filter.Normalize()

	query := r.db.Model(&models.Freelancer{})

	if !filter.IncludeArchived {
		query = query.Where("is_archived = ?", false)
	}

	if term := strings.ToLower(strings.TrimSpace(filter.Term)); term != "" {
		pattern := "%" + escapeLike(term) + "%"
		query = query.Where("LOWER(username) LIKE ? ESCAPE '!' OR LOWER(email) LIKE ? ESCAPE '!'", pattern, pattern)
	}

	if tokens := splitFilterTokens(filter.Skill); len(tokens) > 0 {
		sub := r.db.Model(&models.FreelancerSkill{}).
			Select("1").
			Joins("JOIN skillsets ON skillsets.id = freelancer_skills.skillset_id").
			Where("freelancer_skills.freelancer_id = freelancers.id")
		query = query.Where("EXISTS (?)", tagCondition(sub, "skillsets.name", tokens))
	}

	if tokens := splitFilterTokens(filter.Hobby); len(tokens) > 0 {
		sub := r.db.Model(&models.FreelancerHobby{}).
			Select("1").
			Joins("JOIN hobbies ON hobbies.id = freelancer_hobbies.hobby_id").
			Where("freelancer_hobbies.freelancer_id = freelancers.id")
		query = query.Where("EXISTS (?)", tagCondition(sub, "hobbies.name", tokens))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var freelancers []models.Freelancer
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.
		Order("username ASC, id ASC").
		Offset(offset).
		Limit(filter.PageSize).
		Preload("SkillLinks.Skillset").
		Preload("HobbyLinks.Hobby").
		Find(&freelancers).Error; err != nil {
		return nil, 0, err
	}

	return freelancers, total, nil
}

// tagCondition narrows a link subquery to the filter tokens: a single token is
// a literal substring match, two or more are an exact-set membership test.
func tagCondition(sub *gorm.DB, nameColumn string, tokens []string) *gorm.DB {
	if len(tokens) == 1 {
		return sub.Where("LOWER("+nameColumn+") LIKE ? ESCAPE '!'", "%"+escapeLike(tokens[0])+"%")
	}
	return sub.Where("LOWER("+nameColumn+") IN ?", tokens)
}

// Update overwrites the scalar fields and fully replaces both link sets
func (r *GormFreelancerRepository) Update(f *models.Freelancer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Freelancer{}).
			Where("id = ?", f.ID).
			Updates(map[string]interface{}{
				"username":     f.Username,
				"email":        f.Email,
				"phone_number": f.PhoneNumber,
				"is_archived":  f.IsArchived,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("freelancer_id = ?", f.ID).Delete(&models.FreelancerSkill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("freelancer_id = ?", f.ID).Delete(&models.FreelancerHobby{}).Error; err != nil {
			return err
		}

		return createLinks(tx, f)
	})
}

// SetArchived flips the archive flag
func (r *GormFreelancerRepository) SetArchived(id uuid.UUID, archived bool) error {
	result := r.db.Model(&models.Freelancer{}).
		Where("id = ?", id).
		Update("is_archived", archived)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the freelancer and both link collections in one transaction
func (r *GormFreelancerRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("freelancer_id = ?", id).Delete(&models.FreelancerSkill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("freelancer_id = ?", id).Delete(&models.FreelancerHobby{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Freelancer{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func createLinks(tx *gorm.DB, f *models.Freelancer) error {
	if len(f.SkillLinks) > 0 {
		for i := range f.SkillLinks {
			f.SkillLinks[i].FreelancerID = f.ID
		}
		if err := tx.Omit(clause.Associations).Create(&f.SkillLinks).Error; err != nil {
			return err
		}
	}
	if len(f.HobbyLinks) > 0 {
		for i := range f.HobbyLinks {
			f.HobbyLinks[i].FreelancerID = f.ID
		}
		if err := tx.Omit(clause.Associations).Create(&f.HobbyLinks).Error; err != nil {
			return err
		}
	}
	return nil
}
