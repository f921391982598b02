package model

import (
	"time"

	"github.com/google/uuid"
)

// Job is a unit of work under a contract. A job is created unpaid and
// flips to paid exactly once; paid and payment_date move together.
type Job struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ContractID  uuid.UUID  `gorm:"type:uuid" json:"contractId"`
	Description string     `gorm:"type:text" json:"description"`
	Price       float64    `json:"price"`
	Paid        bool       `json:"paid"`
	PaymentDate *time.Time `json:"paymentDate"`
	CreatedAt   time.Time  `json:"-"`

	Contract Contract `gorm:"-" json:"-"`
}

// ContractJobs groups the unpaid jobs of one in-progress contract.
type ContractJobs struct {
	Contract Contract `json:"contract"`
	Jobs     []Job    `json:"jobs"`
}
