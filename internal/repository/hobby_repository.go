package repository

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rwidjojo/freelancer-directory-api/internal/models"
	"gorm.io/gorm"
)

// GormHobbyRepository is a GORM implementation of MasterRepository backed by
// the hobbies table
type GormHobbyRepository struct {
	db *gorm.DB
}

// NewHobbyRepository creates a MasterRepository for hobbies
func NewHobbyRepository(db *gorm.DB) MasterRepository {
	return &GormHobbyRepository{db: db}
}

func (r *GormHobbyRepository) Create(m *MasterData) error {
	row := models.Hobby{ID: m.ID, Name: m.Name}
	if err := r.db.Create(&row).Error; err != nil {
		return err
	}
	m.ID = row.ID
	return nil
}

func (r *GormHobbyRepository) FindByID(id uuid.UUID) (*MasterData, error) {
	var row models.Hobby
	if err := r.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &MasterData{ID: row.ID, Name: row.Name}, nil
}

func (r *GormHobbyRepository) FindByIDs(ids []uuid.UUID) ([]MasterData, error) {
	var rows []models.Hobby
	if err := r.db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return hobbyRows(rows), nil
}

func (r *GormHobbyRepository) FindByNames(lowered []string) ([]MasterData, error) {
	var rows []models.Hobby
	if err := r.db.Where("LOWER(name) IN ?", lowered).Find(&rows).Error; err != nil {
		return nil, err
	}
	return hobbyRows(rows), nil
}

func (r *GormHobbyRepository) ExistsByName(name string, excludeID uuid.UUID) (bool, error) {
	query := r.db.Model(&models.Hobby{}).Where("LOWER(name) = ?", strings.ToLower(name))
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormHobbyRepository) Rename(id uuid.UUID, name string) error {
	result := r.db.Model(&models.Hobby{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the hobby and every link row referencing it
func (r *GormHobbyRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hobby_id = ?", id).Delete(&models.FreelancerHobby{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Hobby{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *GormHobbyRepository) List(filter MasterFilter) ([]MasterData, int64, error) {
	filter.Normalize()

	query := r.db.Model(&models.Hobby{})
	if term := strings.ToLower(strings.TrimSpace(filter.Term)); term != "" {
		query = query.Where("LOWER(name) LIKE ? ESCAPE '!'", "%"+escapeLike(term)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Hobby
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("name ASC").Offset(offset).Limit(filter.PageSize).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return hobbyRows(rows), total, nil
}

func hobbyRows(rows []models.Hobby) []MasterData {
	out := make([]MasterData, len(rows))
	for i, row := range rows {
		out[i] = MasterData{ID: row.ID, Name: row.Name}
	}
	return out
}
