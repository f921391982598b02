package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientTotal is one row of the per-client paid-job aggregation.
type ClientTotal struct {
	ClientID   uuid.UUID
	FirstName  string
	LastName   string
	Profession string
	TotalPaid  float64
}

// BestClient is a single entry of the best-clients report.
type BestClient struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	TotalPaid float64   `json:"totalPaid"`
}

// ClientsStatement is the renderable best-clients report for a period.
type ClientsStatement struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Clients     []BestClient
}

func (s ClientsStatement) TotalPaid() float64 {
	total := 0.0
	for _, client := range s.Clients {
		total += client.TotalPaid
	}
	return total
}
