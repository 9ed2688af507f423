package storage

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		category_id INTEGER REFERENCES categories(id) ON DELETE SET NULL,
		image_url VARCHAR(255),
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		is_popular BOOLEAN NOT NULL DEFAULT FALSE,
		meal_period VARCHAR(20) NOT NULL DEFAULT 'BOTH',
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS modifiers (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		price NUMERIC(10,2) NOT NULL,
		category_id INTEGER REFERENCES categories(id) ON DELETE SET NULL,
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS menu_item_modifiers (
		menu_item_id INTEGER NOT NULL REFERENCES menu_items(id) ON DELETE CASCADE,
		modifier_id INTEGER NOT NULL REFERENCES modifiers(id) ON DELETE CASCADE,
		PRIMARY KEY (menu_item_id, modifier_id)
	)`,
	`CREATE TABLE IF NOT EXISTS tables (
		id SERIAL PRIMARY KEY,
		number INTEGER NOT NULL UNIQUE,
		capacity INTEGER NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'available',
		reservation_time TIMESTAMPTZ,
		party_size INTEGER,
		customer_name VARCHAR(255),
		customer_phone VARCHAR(20),
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		table_id INTEGER NOT NULL REFERENCES tables(id),
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		notes TEXT,
		ayce_order BOOLEAN NOT NULL DEFAULT FALSE,
		ayce_price NUMERIC(10,2) NOT NULL DEFAULT 25.00,
		total_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		version INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ,
		completion_time TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id SERIAL PRIMARY KEY,
		order_id INTEGER NOT NULL REFERENCES orders(id),
		menu_item_id INTEGER NOT NULL REFERENCES menu_items(id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		unit_price NUMERIC(10,2) NOT NULL,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS order_item_modifiers (
		order_item_id INTEGER NOT NULL REFERENCES order_items(id) ON DELETE CASCADE,
		modifier_id INTEGER NOT NULL REFERENCES modifiers(id),
		PRIMARY KEY (order_item_id, modifier_id)
	)`,
	`CREATE TABLE IF NOT EXISTS discounts (
		id SERIAL PRIMARY KEY,
		order_id INTEGER NOT NULL UNIQUE REFERENCES orders(id),
		type VARCHAR(10) NOT NULL,
		value NUMERIC(10,2) NOT NULL CHECK (value >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		restaurant_name VARCHAR(255) NOT NULL,
		timezone VARCHAR(100) NOT NULL,
		current_meal_period VARCHAR(10) NOT NULL DEFAULT 'DINNER',
		ayce_lunch_price NUMERIC(10,2) NOT NULL DEFAULT 20.00,
		ayce_dinner_price NUMERIC(10,2) NOT NULL DEFAULT 25.00,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(100) NOT NULL UNIQUE,
		email VARCHAR(255) NOT NULL UNIQUE,
		hashed_password VARCHAR(255) NOT NULL,
		full_name VARCHAR(255),
		role VARCHAR(20) NOT NULL DEFAULT 'server',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_superuser BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ
	)`,
	"ALTER TABLE IF EXISTS menu_items ADD COLUMN IF NOT EXISTS meal_period VARCHAR(20) NOT NULL DEFAULT 'BOTH'",
	"ALTER TABLE IF EXISTS orders ADD COLUMN IF NOT EXISTS version INTEGER NOT NULL DEFAULT 1",
	"CREATE INDEX IF NOT EXISTS idx_orders_table_status ON orders (table_id, status)",
	"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items (order_id)",
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db().ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	for i, c := range stmt {
		if c == '\n' {
			return stmt[:i]
		}
	}
	return stmt
}
