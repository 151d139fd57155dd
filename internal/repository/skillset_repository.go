package repository

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rwidjojo/freelancer-directory-api/internal/models"
	"gorm.io/gorm"
)

// GormSkillsetRepository is a GORM implementation of MasterRepository backed
// by the skillsets table
type GormSkillsetRepository struct {
	db *gorm.DB
}

// NewSkillsetRepository creates a MasterRepository for skillsets
func NewSkillsetRepository(db *gorm.DB) MasterRepository {
	return &GormSkillsetRepository{db: db}
}

func (r *GormSkillsetRepository) Create(m *MasterData) error {
	row := models.Skillset{ID: m.ID, Name: m.Name}
	if err := r.db.Create(&row).Error; err != nil {
		return err
	}
	m.ID = row.ID
	return nil
}

func (r *GormSkillsetRepository) FindByID(id uuid.UUID) (*MasterData, error) {
	var row models.Skillset
	if err := r.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &MasterData{ID: row.ID, Name: row.Name}, nil
}

func (r *GormSkillsetRepository) FindByIDs(ids []uuid.UUID) ([]MasterData, error) {
	var rows []models.Skillset
	if err := r.db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return skillsetRows(rows), nil
}

func (r *GormSkillsetRepository) FindByNames(lowered []string) ([]MasterData, error) {
	var rows []models.Skillset
	if err := r.db.Where("LOWER(name) IN ?", lowered).Find(&rows).Error; err != nil {
		return nil, err
	}
	return skillsetRows(rows), nil
}

func (r *GormSkillsetRepository) ExistsByName(name string, excludeID uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Skillset{}).Where("LOWER(name) = ?", strings.ToLower(name))
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormSkillsetRepository) Rename(id uuid.UUID, name string) error {
	result := r.db.Model(&models.Skillset{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the skillset and every link row referencing it, so no
// freelancer keeps a dangling association
func (r *GormSkillsetRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("skillset_id = ?", id).Delete(&models.FreelancerSkill{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Skillset{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *GormSkillsetRepository) List(filter MasterFilter) ([]MasterData, int64, error) {
	filter.Normalize()

	query := r.db.Model(&models.Skillset{})
	if term := strings.ToLower(strings.TrimSpace(filter.Term)); term != "" {
		query = query.Where("LOWER(name) LIKE ? ESCAPE '!'", "%"+escapeLike(term)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Skillset
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("name ASC").Offset(offset).Limit(filter.PageSize).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return skillsetRows(rows), total, nil
}

func skillsetRows(rows []models.Skillset) []MasterData {
	out := make([]MasterData, len(rows))
	for i, row := range rows {
		out[i] = MasterData{ID: row.ID, Name: row.Name}
	}
	return out
}
