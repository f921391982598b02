package model

import (
	"time"

	"github.com/google/uuid"
)

type ContractStatus string

const (
	ContractStatusNew        ContractStatus = "new"
	ContractStatusInProgress ContractStatus = "in_progress"
	ContractStatusTerminated ContractStatus = "terminated"
)

// Contract ties exactly one client to one contractor.
type Contract struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID     uuid.UUID      `gorm:"type:uuid" json:"clientId"`
	ContractorID uuid.UUID      `gorm:"type:uuid" json:"contractorId"`
	Terms        string         `gorm:"type:text" json:"terms"`
	Status       ContractStatus `gorm:"type:varchar(16)" json:"status"`
	CreatedAt    time.Time      `json:"-"`
}
