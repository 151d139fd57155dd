package repository

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rwidjojo/freelancer-directory-api/internal/models"
	"github.com/rwidjojo/freelancer-directory-api/internal/utils"
)

// FreelancerRepository defines the interface for freelancer data access
type FreelancerRepository interface {
	// Create persists a freelancer together with its link rows
	Create(f *models.Freelancer) error

	// FindByID finds a freelancer by ID with skill and hobby links preloaded
	FindByID(id uuid.UUID) (*models.Freelancer, error)

	// FindByUsernameOrEmail finds a freelancer holding either key, excluding
	// excludeID when it is non-nil
	FindByUsernameOrEmail(username, email string, excludeID uuid.UUID) (*models.Freelancer, error)

	// List retrieves freelancers with filtering and pagination
	List(filter FreelancerFilter) ([]models.Freelancer, int64, error)

	// Update overwrites the freelancer's fields and replaces both link sets
	Update(f *models.Freelancer) error

	// SetArchived flips the archive flag
	SetArchived(id uuid.UUID, archived bool) error

	// Delete removes a freelancer and its link rows
	Delete(id uuid.UUID) error
}

// MasterData is the repository-level view of a skillset or hobby row.
type MasterData struct {
	ID   uuid.UUID
	Name string
}

// MasterRepository defines the interface for skillset/hobby data access.
// Both master tables have the same shape, so one contract serves both.
type MasterRepository interface {
	// Create persists a new master record, assigning an ID
	Create(m *MasterData) error

	// FindByID finds a master record by ID
	FindByID(id uuid.UUID) (*MasterData, error)

	// FindByIDs returns the master records matching the given IDs
	FindByIDs(ids []uuid.UUID) ([]MasterData, error)

	// FindByNames returns master records whose lower-cased name matches any
	// of the given lower-cased names
	FindByNames(lowered []string) ([]MasterData, error)

	// ExistsByName reports whether a record other than excludeID holds the
	// name, compared case-insensitively
	ExistsByName(name string, excludeID uuid.UUID) (bool, error)

	// Rename updates the record's name
	Rename(id uuid.UUID, name string) error

	// Delete removes the record and every link row referencing it
	Delete(id uuid.UUID) error

	// List retrieves master records filtered and paginated
	List(filter MasterFilter) ([]MasterData, int64, error)
}

// FreelancerFilter holds filtering options for listing freelancers
type FreelancerFilter struct {
	Term            string
	Skill           string
	Hobby           string
	IncludeArchived bool
	Page            int
	PageSize        int
}

// Normalize clamps the paging values; the repository applies it again so the
// contract holds no matter which layer built the filter.
func (f *FreelancerFilter) Normalize() {
	f.Page, f.PageSize = utils.NormalizePaging(f.Page, f.PageSize)
}

// MasterFilter holds filtering options for listing master records
type MasterFilter struct {
	Term     string
	Page     int
	PageSize int
}

func (f *MasterFilter) Normalize() {
	f.Page, f.PageSize = utils.NormalizePaging(f.Page, f.PageSize)
}

// escapeLike escapes LIKE metacharacters so filter text matches literally.
// Queries using the result must carry ESCAPE '!'; a backslash escape would
// collide with MySQL's string-literal syntax while '!' reads the same on
// every supported driver.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "!", "!!")
	s = strings.ReplaceAll(s, "%", "!%")
	s = strings.ReplaceAll(s, "_", "!_")
	return s
}

// splitFilterTokens parses a comma-separated tag filter into trimmed,
// lower-cased tokens. Empty tokens are dropped.
func splitFilterTokens(filter string) []string {
	parts := strings.Split(filter, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToLower(strings.TrimSpace(p))
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
