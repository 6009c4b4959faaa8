package entity

import (
	"github.com/google/uuid"

	"github.com/openfinml/riskscore/constants"
)

// Identity is the submitting user, carried with the job for scope filtering.
type Identity struct {
	UserID uuid.UUID      `json:"user_id"`
	OrgID  *uuid.UUID     `json:"org_id,omitempty"`
	Role   constants.Role `json:"role"`
}

// AccessScopeFor resolves the visibility tier new records are created under.
// Pure function of (role, organization membership), evaluated once per row at
// upsert time: admins create system-wide records, managers with an
// organization create organization-shared ones, everyone else private.
func AccessScopeFor(id Identity) constants.ScopeTier {
	switch {
	case id.Role == constants.RoleAdmin:
		return constants.ScopeSystem
	case id.Role == constants.RoleManager && id.OrgID != nil:
		return constants.ScopeOrganization
	default:
		return constants.ScopePrivate
	}
}

// ScopeKeyFor derives the storage key that partitions records by visibility.
// The key is what the uniqueness constraints on company and prediction rows
// are defined over.
func ScopeKeyFor(tier constants.ScopeTier, id Identity) string {
	switch tier {
	case constants.ScopeSystem:
		return "system"
	case constants.ScopeOrganization:
		if id.OrgID != nil {
			return "org:" + id.OrgID.String()
		}
	}
	return "user:" + id.UserID.String()
}
