package constants

// ScopeTier is the visibility tier a record is created under. Closed set:
// role checks happen once, at scope resolution, never as string comparisons
// inside the pipeline.
type ScopeTier string

const (
	ScopePrivate      ScopeTier = "PRIVATE"      // visible to the submitting user only
	ScopeOrganization ScopeTier = "ORGANIZATION" // shared within the submitter's organization
	ScopeSystem       ScopeTier = "SYSTEM"       // visible system-wide
)

// Role is the submitting identity's authorization tier.
type Role string

const (
	RoleUser    Role = "USER"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
)
