package model

import "github.com/google/uuid"

// Principal is the resolved caller identity a request operates under.
type Principal struct {
	ProfileID uuid.UUID
	Role      ProfileRole
	Balance   float64
}

func (p Principal) IsClient() bool {
	return p.Role == RoleClient
}

func (p Principal) IsContractor() bool {
	return p.Role == RoleContractor
}
