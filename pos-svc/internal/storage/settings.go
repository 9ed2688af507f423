package storage

import (
	"context"

	"sushi-pos/pos-svc/internal/domain"
)

const settingsColumns = `id, restaurant_name, timezone, current_meal_period, ayce_lunch_price, ayce_dinner_price,
	created_at, updated_at`

func scanSettings(row interface{ Scan(...interface{}) error }, s *domain.Settings) error {
	return row.Scan(&s.ID, &s.RestaurantName, &s.Timezone, &s.CurrentMealPeriod, &s.AYCELunchPrice, &s.AYCEDinnerPrice,
		&s.CreatedAt, &s.UpdatedAt)
}

// GetOrCreateSettings returns the singleton row, inserting the defaults
// first when it does not exist. ON CONFLICT makes concurrent first reads
// converge on one row.
func (r *PostgresRepository) GetOrCreateSettings(ctx context.Context) (*domain.Settings, error) {
	def := domain.DefaultSettings()
	var s domain.Settings
	err := r.inTx(ctx, func(q querier) error {
		if _, err := q.ExecContext(ctx, `
			INSERT INTO settings (id, restaurant_name, timezone, current_meal_period, ayce_lunch_price, ayce_dinner_price)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING`,
			def.ID, def.RestaurantName, def.Timezone, def.CurrentMealPeriod, def.AYCELunchPrice, def.AYCEDinnerPrice); err != nil {
			return err
		}
		return scanSettings(q.QueryRowContext(ctx, "SELECT "+settingsColumns+" FROM settings WHERE id = $1", def.ID), &s)
	})
	if err != nil {
		return nil, mapError(err, "Settings", def.ID)
	}
	return &s, nil
}

func (r *PostgresRepository) UpdateSettings(ctx context.Context, s *domain.Settings) error {
	err := r.db().QueryRowContext(ctx, `
		UPDATE settings
		SET restaurant_name = $1, timezone = $2, current_meal_period = $3,
			ayce_lunch_price = $4, ayce_dinner_price = $5, updated_at = now()
		WHERE id = $6
		RETURNING updated_at`,
		s.RestaurantName, s.Timezone, s.CurrentMealPeriod, s.AYCELunchPrice, s.AYCEDinnerPrice, s.ID).
		Scan(&s.UpdatedAt)
	return mapError(err, "Settings", s.ID)
}
