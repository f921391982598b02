package model

import (
	"time"

	"github.com/google/uuid"
)

type ProfileRole string

const (
	RoleClient     ProfileRole = "client"
	RoleContractor ProfileRole = "contractor"
)

// Profile is a party on the marketplace. The balance is the only money
// holder in the system and never goes negative.
type Profile struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Role       ProfileRole `gorm:"type:varchar(16)" json:"role"`
	FirstName  string      `gorm:"type:varchar(128)" json:"firstName"`
	LastName   string      `gorm:"type:varchar(128)" json:"lastName"`
	Profession string      `gorm:"type:varchar(128)" json:"profession"`
	Balance    float64     `json:"balance"`
	CreatedAt  time.Time   `json:"-"`
}

func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
