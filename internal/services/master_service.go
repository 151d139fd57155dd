package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rwidjojo/freelancer-directory-api/internal/repository"
	"gorm.io/gorm"
)

// MasterRef is a tagged reference to a master record: either an existing ID
// or a free-text name to resolve (creating the record when unseen). Exactly
// one of the two is set.
type MasterRef struct {
	ID   uuid.UUID
	Name string
}

// RefByID builds an ID reference.
func RefByID(id uuid.UUID) MasterRef {
	return MasterRef{ID: id}
}

// RefByName builds a name reference.
func RefByName(name string) MasterRef {
	return MasterRef{Name: name}
}

// ByID reports which side of the union the reference carries.
func (r MasterRef) ByID() bool {
	return r.ID != uuid.Nil
}

// MasterService holds the business rules shared by the skillset and hobby
// master tables; the entity label distinguishes the two in errors.
type MasterService struct {
	repo   repository.MasterRepository
	entity string
}

// NewMasterService creates a MasterService over the given repository.
func NewMasterService(repo repository.MasterRepository, entity string) *MasterService {
	return &MasterService{repo: repo, entity: entity}
}

// ListMastersInput represents filters for listing master records
type ListMastersInput struct {
	Term     string
	Page     int
	PageSize int
}

// Create adds a master record after trimming the name and rejecting
// case-insensitive duplicates.
func (s *MasterService) Create(name string) (*repository.MasterData, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	exists, err := s.repo.ExistsByName(name, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s name: %w", s.entity, err)
	}
	if exists {
		return nil, &DuplicateError{Entity: s.entity, Key: "name", Value: name}
	}

	m := &repository.MasterData{Name: name}
	if err := s.repo.Create(m); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &DuplicateError{Entity: s.entity, Key: "name", Value: name}
		}
		return nil, fmt.Errorf("failed to create %s: %w", s.entity, err)
	}
	return m, nil
}

// Rename changes a master record's name, keeping uniqueness.
func (s *MasterService) Rename(id uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}

	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: s.entity, ID: id}
		}
		return fmt.Errorf("failed to find %s: %w", s.entity, err)
	}

	exists, err := s.repo.ExistsByName(name, id)
	if err != nil {
		return fmt.Errorf("failed to check %s name: %w", s.entity, err)
	}
	if exists {
		return &DuplicateError{Entity: s.entity, Key: "name", Value: name}
	}

	if err := s.repo.Rename(id, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: s.entity, ID: id}
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &DuplicateError{Entity: s.entity, Key: "name", Value: name}
		}
		return fmt.Errorf("failed to rename %s: %w", s.entity, err)
	}
	return nil
}

// Delete removes a master record; link rows referencing it go with it.
func (s *MasterService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: s.entity, ID: id}
		}
		return fmt.Errorf("failed to delete %s: %w", s.entity, err)
	}
	return nil
}

// List returns a page of master records matching the optional name substring.
func (s *MasterService) List(input ListMastersInput) ([]repository.MasterData, int64, error) {
	items, total, err := s.repo.List(repository.MasterFilter{
		Term:     input.Term,
		Page:     input.Page,
		PageSize: input.PageSize,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s records: %w", s.entity, err)
	}
	return items, total, nil
}

// Resolve materializes a set of references into master records. ID references
// must all exist; name references are matched case-insensitively and created
// when unseen, persisted immediately so later lookups in the same write see
// them. Duplicate references collapse before processing and the result is
// deduplicated by ID.
func (s *MasterService) Resolve(refs []MasterRef) ([]repository.MasterData, error) {
	var ids []uuid.UUID
	var names []string
	seenID := make(map[uuid.UUID]bool)
	seenName := make(map[string]bool)

	for _, ref := range refs {
		if ref.ByID() {
			if !seenID[ref.ID] {
				seenID[ref.ID] = true
				ids = append(ids, ref.ID)
			}
			continue
		}
		name := strings.TrimSpace(ref.Name)
		if name == "" {
			continue
		}
		if key := strings.ToLower(name); !seenName[key] {
			seenName[key] = true
			names = append(names, name)
		}
	}

	var out []repository.MasterData
	resolved := make(map[uuid.UUID]bool)

	if len(ids) > 0 {
		found, err := s.repo.FindByIDs(ids)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s ids: %w", s.entity, err)
		}
		byID := make(map[uuid.UUID]repository.MasterData, len(found))
		for _, m := range found {
			byID[m.ID] = m
		}
		for _, id := range ids {
			m, ok := byID[id]
			if !ok {
				return nil, &NotFoundError{Entity: s.entity, ID: id}
			}
			if !resolved[m.ID] {
				resolved[m.ID] = true
				out = append(out, m)
			}
		}
	}

	if len(names) > 0 {
		lowered := make([]string, len(names))
		for i, n := range names {
			lowered[i] = strings.ToLower(n)
		}
		existing, err := s.repo.FindByNames(lowered)
		if err != nil {
			return nil, fmt.Errorf("failed to look up %s names: %w", s.entity, err)
		}
		byName := make(map[string]repository.MasterData, len(existing))
		for _, m := range existing {
			byName[strings.ToLower(m.Name)] = m
		}

		for _, name := range names {
			if m, ok := byName[strings.ToLower(name)]; ok {
				if !resolved[m.ID] {
					resolved[m.ID] = true
					out = append(out, m)
				}
				continue
			}

			m := repository.MasterData{Name: name}
			if err := s.repo.Create(&m); err != nil {
				// Lost the check-then-insert race: the unique index is the
				// final arbiter and the caller sees a conflict.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return nil, &DuplicateError{Entity: s.entity, Key: "name", Value: name}
				}
				return nil, fmt.Errorf("failed to create %s %q: %w", s.entity, name, err)
			}
			resolved[m.ID] = true
			out = append(out, m)
		}
	}

	return out, nil
}
