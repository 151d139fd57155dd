package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rwidjojo/freelancer-directory-api/internal/models"
	"github.com/rwidjojo/freelancer-directory-api/internal/repository"
	"gorm.io/gorm"
)

// FreelancerService orchestrates the freelancer write path and listing. Skill
// and hobby references are materialized through the master services before
// anything touches the freelancer tables.
type FreelancerService struct {
	repo    repository.FreelancerRepository
	skills  *MasterService
	hobbies *MasterService
}

// NewFreelancerService creates a new FreelancerService
func NewFreelancerService(repo repository.FreelancerRepository, skills, hobbies *MasterService) *FreelancerService {
	return &FreelancerService{
		repo:    repo,
		skills:  skills,
		hobbies: hobbies,
	}
}

// FreelancerInput represents the full payload for create and update; updates
// replace every field and both link sets.
type FreelancerInput struct {
	Username    string
	Email       string
	PhoneNumber string
	IsArchived  bool
	SkillRefs   []MasterRef
	HobbyRefs   []MasterRef
}

// ListFreelancersInput represents filters for listing freelancers
type ListFreelancersInput struct {
	Term            string
	Skill           string
	Hobby           string
	IncludeArchived bool
	Page            int
	PageSize        int
}

// Get returns a freelancer with its skill and hobby links
func (s *FreelancerService) Get(id uuid.UUID) (*models.Freelancer, error) {
	f, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "freelancer", ID: id}
		}
		return nil, fmt.Errorf("failed to find freelancer: %w", err)
	}
	return f, nil
}

// List returns a page of freelancers under the given filters
func (s *FreelancerService) List(input ListFreelancersInput) ([]models.Freelancer, int64, error) {
	items, total, err := s.repo.List(repository.FreelancerFilter{
		Term:            input.Term,
		Skill:           input.Skill,
		Hobby:           input.Hobby,
		IncludeArchived: input.IncludeArchived,
		Page:            input.Page,
		PageSize:        input.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list freelancers: %w", err)
	}
	return items, total, nil
}

// Create validates the payload, rejects duplicate username/email across all
// freelancers (archived included), resolves references and persists the
// freelancer with its link rows.
func (s *FreelancerService) Create(input FreelancerInput) (*models.Freelancer, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}
	if err := s.checkDuplicate(input.Username, input.Email, uuid.Nil); err != nil {
		return nil, err
	}

	skillLinks, hobbyLinks, err := s.resolveLinks(input)
	if err != nil {
		return nil, err
	}

	f := &models.Freelancer{
		Username:    input.Username,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		IsArchived:  input.IsArchived,
		SkillLinks:  skillLinks,
		HobbyLinks:  hobbyLinks,
	}

	if err := s.repo.Create(f); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateError{Entity: "freelancer", Key: "username or email", Value: input.Username}
		}
		return nil, fmt.Errorf("failed to create freelancer: %w", err)
	}

	return s.Get(f.ID)
}

// Update overwrites an existing freelancer; the skill and hobby sets are
// fully replaced, so a reference omitted from the payload is detached.
func (s *FreelancerService) Update(id uuid.UUID, input FreelancerInput) error {
	if err := s.validate(&input); err != nil {
		return err
	}

	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "freelancer", ID: id}
		}
		return fmt.Errorf("failed to find freelancer: %w", err)
	}

	if err := s.checkDuplicate(input.Username, input.Email, id); err != nil {
		return err
	}

	skillLinks, hobbyLinks, err := s.resolveLinks(input)
	if err != nil {
		return err
	}

	f := &models.Freelancer{
		ID:          id,
		Username:    input.Username,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		IsArchived:  input.IsArchived,
		SkillLinks:  skillLinks,
		HobbyLinks:  hobbyLinks,
	}

	if err := s.repo.Update(f); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "freelancer", ID: id}
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &DuplicateError{Entity: "freelancer", Key: "username or email", Value: input.Username}
		}
		return fmt.Errorf("failed to update freelancer: %w", err)
	}
	return nil
}

// SetArchived toggles the archive flag; a missing target is an error, never a
// silent no-op.
func (s *FreelancerService) SetArchived(id uuid.UUID, archived bool) error {
	if err := s.repo.SetArchived(id, archived); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "freelancer", ID: id}
		}
		return fmt.Errorf("failed to archive freelancer: %w", err)
	}
	return nil
}

// Delete removes a freelancer and cascades its link rows
func (s *FreelancerService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "freelancer", ID: id}
		}
		return fmt.Errorf("failed to delete freelancer: %w", err)
	}
	return nil
}

func (s *FreelancerService) validate(input *FreelancerInput) error {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	if input.Username == "" || input.Email == "" {
		return ErrUsernameEmailRequired
	}
	if !strings.Contains(input.Email, "@") {
		return ErrEmailInvalid
	}
	return nil
}

// checkDuplicate is the friendly pre-check; the unique indexes remain the
// final arbiter under concurrent writers.
func (s *FreelancerService) checkDuplicate(username, email string, excludeID uuid.UUID) error {
	existing, err := s.repo.FindByUsernameOrEmail(username, email, excludeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check for duplicates: %w", err)
	}
	if existing.Username == username {
		return &DuplicateError{Entity: "freelancer", Key: "username", Value: username}
	}
	return &DuplicateError{Entity: "freelancer", Key: "email", Value: email}
}

func (s *FreelancerService) resolveLinks(input FreelancerInput) ([]models.FreelancerSkill, []models.FreelancerHobby, error) {
	skills, err := s.skills.Resolve(input.SkillRefs)
	if err != nil {
		return nil, nil, err
	}
	hobbies, err := s.hobbies.Resolve(input.HobbyRefs)
	if err != nil {
		return nil, nil, err
	}

	skillLinks := make([]models.FreelancerSkill, len(skills))
	for i, m := range skills {
		skillLinks[i] = models.FreelancerSkill{SkillsetID: m.ID}
	}
	hobbyLinks := make([]models.FreelancerHobby, len(hobbies))
	for i, m := range hobbies {
		hobbyLinks[i] = models.FreelancerHobby{HobbyID: m.ID}
	}
	return skillLinks, hobbyLinks, nil
}
