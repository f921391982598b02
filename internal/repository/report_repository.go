package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nurpe/marketplace-ledger/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// TopClientsByPaidTotal sums paid job prices per client over
// [from, toExclusive) of payment_date, ordered by total descending with
// the smaller client id winning ties, truncated to limit rows.
func (r *ReportRepository) TopClientsByPaidTotal(
	ctx context.Context,
	from, toExclusive time.Time,
	limit int,
) ([]model.ClientTotal, error) {
	var rows []model.ClientTotal
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id AS client_id,
			p.first_name,
			p.last_name,
			p.profession,
			SUM(j.price) AS total_paid
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles p ON p.id = c.client_id
		WHERE j.paid = ?
			AND j.payment_date >= ?
			AND j.payment_date < ?
		GROUP BY p.id, p.first_name, p.last_name, p.profession
		ORDER BY total_paid DESC, p.id ASC
		LIMIT ?
	`, true, from, toExclusive, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
