package constants

// Pagination bounds shared by handlers and repositories.
const (
	MinPage         = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Field length limits enforced by the schema.
const (
	MaxUsernameLength   = 100
	MaxEmailLength      = 200
	MaxPhoneLength      = 30
	MaxMasterNameLength = 100
)
