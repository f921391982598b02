package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Demo fixtures for local development, applied when DB_SEED_DEMO is set.
// Inserts are keyed on fixed ids so re-runs are no-ops.
var seedStatements = []string{
	`INSERT INTO profiles (id, role, first_name, last_name, profession, balance) VALUES
		('11111111-0000-0000-0000-000000000001', 'client', 'Aigerim', 'Seitova', 'Product Manager', 1150),
		('11111111-0000-0000-0000-000000000002', 'client', 'Marat', 'Ospanov', 'Architect', 231.11),
		('11111111-0000-0000-0000-000000000003', 'client', 'Dana', 'Akhmetova', 'Designer', 451.3),
		('22222222-0000-0000-0000-000000000001', 'contractor', 'Timur', 'Bekov', 'Plumber', 64),
		('22222222-0000-0000-0000-000000000002', 'contractor', 'Saule', 'Nurlanova', 'Electrician', 1214),
		('22222222-0000-0000-0000-000000000003', 'contractor', 'Olzhas', 'Karimov', 'Programmer', 22)
	ON CONFLICT (id) DO NOTHING;`,
	`INSERT INTO contracts (id, client_id, contractor_id, terms, status) VALUES
		('33333333-0000-0000-0000-000000000001', '11111111-0000-0000-0000-000000000001', '22222222-0000-0000-0000-000000000001', 'bathroom renovation', 'terminated'),
		('33333333-0000-0000-0000-000000000002', '11111111-0000-0000-0000-000000000001', '22222222-0000-0000-0000-000000000003', 'backoffice rewrite', 'in_progress'),
		('33333333-0000-0000-0000-000000000003', '11111111-0000-0000-0000-000000000002', '22222222-0000-0000-0000-000000000002', 'office wiring', 'in_progress'),
		('33333333-0000-0000-0000-000000000004', '11111111-0000-0000-0000-000000000003', '22222222-0000-0000-0000-000000000003', 'landing page', 'new')
	ON CONFLICT (id) DO NOTHING;`,
	`INSERT INTO jobs (id, contract_id, description, price, paid, payment_date) VALUES
		('44444444-0000-0000-0000-000000000001', '33333333-0000-0000-0000-000000000001', 'replace piping', 200, TRUE, '2020-08-15T19:11:26Z'),
		('44444444-0000-0000-0000-000000000002', '33333333-0000-0000-0000-000000000002', 'auth module', 201, FALSE, NULL),
		('44444444-0000-0000-0000-000000000003', '33333333-0000-0000-0000-000000000002', 'billing module', 202, FALSE, NULL),
		('44444444-0000-0000-0000-000000000004', '33333333-0000-0000-0000-000000000003', 'main panel', 121, TRUE, '2020-08-16T19:11:26Z'),
		('44444444-0000-0000-0000-000000000005', '33333333-0000-0000-0000-000000000003', 'cabling', 121, FALSE, NULL),
		('44444444-0000-0000-0000-000000000006', '33333333-0000-0000-0000-000000000004', 'wireframes', 79, FALSE, NULL)
	ON CONFLICT (id) DO NOTHING;`,
}

func Seed(db *gorm.DB) error {
	for i, stmt := range seedStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("seed statement %d failed: %w", i+1, err)
		}
	}
	return nil
}
