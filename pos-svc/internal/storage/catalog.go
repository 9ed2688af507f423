package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"sushi-pos/pos-svc/internal/domain"
)

const categoryColumns = "id, name, description, display_order, created_at, updated_at"

func scanCategory(row interface{ Scan(...interface{}) error }, c *domain.Category) error {
	return row.Scan(&c.ID, &c.Name, &c.Description, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt)
}

func (r *PostgresRepository) ListCategories(ctx context.Context, skip, limit int) ([]domain.Category, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT `+categoryColumns+`
		FROM categories
		ORDER BY display_order, id
		OFFSET $1 LIMIT $2`, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	var c domain.Category
	row := r.db().QueryRowContext(ctx, "SELECT "+categoryColumns+" FROM categories WHERE id = $1", id)
	if err := scanCategory(row, &c); err != nil {
		return nil, mapError(err, "Category", id)
	}
	return &c, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	err := r.db().QueryRowContext(ctx, `
		INSERT INTO categories (name, description, display_order)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		c.Name, c.Description, c.DisplayOrder).
		Scan(&c.ID, &c.CreatedAt)
	return mapError(err, "Category", c.Name)
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	err := r.db().QueryRowContext(ctx, `
		UPDATE categories
		SET name = $1, description = $2, display_order = $3, updated_at = now()
		WHERE id = $4
		RETURNING updated_at`,
		c.Name, c.Description, c.DisplayOrder, c.ID).
		Scan(&c.UpdatedAt)
	return mapError(err, "Category", c.ID)
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id int) (int64, error) {
	n, err := affected(r.db().ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id))
	return n, mapError(err, "Category", id)
}

const menuItemColumns = `id, name, description, price, category_id, image_url, is_available,
	is_popular, meal_period, display_order, created_at, updated_at`

func scanMenuItem(row interface{ Scan(...interface{}) error }, m *domain.MenuItem) error {
	return row.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.CategoryID, &m.ImageURL, &m.IsAvailable,
		&m.IsPopular, &m.MealPeriod, &m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt)
}

func collectMenuItems(rows *sql.Rows) ([]domain.MenuItem, error) {
	defer rows.Close()
	items := []domain.MenuItem{}
	for rows.Next() {
		var m domain.MenuItem
		if err := scanMenuItem(rows, &m); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, f domain.MenuItemFilter) ([]domain.MenuItem, error) {
	var (
		where []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.CategoryID != nil {
		where = append(where, "category_id = "+arg(*f.CategoryID))
	}
	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		where = append(where, "(name ILIKE "+p+" OR description ILIKE "+p+")")
	}
	if f.MinPrice != nil {
		where = append(where, "price >= "+arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		where = append(where, "price <= "+arg(*f.MaxPrice))
	}

	query := "SELECT " + menuItemColumns + " FROM menu_items"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY display_order, id OFFSET " + arg(f.Skip) + " LIMIT " + arg(f.Limit)

	rows, err := r.db().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectMenuItems(rows)
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	var m domain.MenuItem
	row := r.db().QueryRowContext(ctx, "SELECT "+menuItemColumns+" FROM menu_items WHERE id = $1", id)
	if err := scanMenuItem(row, &m); err != nil {
		return nil, mapError(err, "MenuItem", id)
	}
	return &m, nil
}

// GetMenuItems returns the items among ids that exist.
func (r *PostgresRepository) GetMenuItems(ctx context.Context, ids []int) ([]domain.MenuItem, error) {
	rows, err := r.db().QueryContext(ctx,
		"SELECT "+menuItemColumns+" FROM menu_items WHERE id = ANY($1) ORDER BY id", pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return collectMenuItems(rows)
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, m *domain.MenuItem) error {
	err := r.db().QueryRowContext(ctx, `
		INSERT INTO menu_items (name, description, price, category_id, image_url, is_available, is_popular, meal_period, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		m.Name, m.Description, m.Price, m.CategoryID, m.ImageURL, m.IsAvailable, m.IsPopular, m.MealPeriod, m.DisplayOrder).
		Scan(&m.ID, &m.CreatedAt)
	return mapError(err, "MenuItem", m.Name)
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, m *domain.MenuItem) error {
	err := r.db().QueryRowContext(ctx, `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category_id = $4, image_url = $5,
			is_available = $6, is_popular = $7, meal_period = $8, display_order = $9, updated_at = now()
		WHERE id = $10
		RETURNING updated_at`,
		m.Name, m.Description, m.Price, m.CategoryID, m.ImageURL, m.IsAvailable, m.IsPopular, m.MealPeriod, m.DisplayOrder, m.ID).
		Scan(&m.UpdatedAt)
	return mapError(err, "MenuItem", m.ID)
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id int) (int64, error) {
	n, err := affected(r.db().ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id))
	return n, mapError(err, "MenuItem", id)
}

func (r *PostgresRepository) SetMenuItemsAvailability(ctx context.Context, ids []int, available bool) (int64, error) {
	return affected(r.db().ExecContext(ctx,
		"UPDATE menu_items SET is_available = $1, updated_at = now() WHERE id = ANY($2)", available, pq.Array(ids)))
}

// SetMenuItemModifiers replaces the allowed modifiers of a menu item.
func (r *PostgresRepository) SetMenuItemModifiers(ctx context.Context, menuItemID int, modifierIDs []int) error {
	return r.inTx(ctx, func(q querier) error {
		if _, err := q.ExecContext(ctx, "DELETE FROM menu_item_modifiers WHERE menu_item_id = $1", menuItemID); err != nil {
			return err
		}
		for _, modID := range modifierIDs {
			if _, err := q.ExecContext(ctx,
				"INSERT INTO menu_item_modifiers (menu_item_id, modifier_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
				menuItemID, modID); err != nil {
				return mapError(err, "Modifier", modID)
			}
		}
		return nil
	})
}

const modifierColumns = "m.id, m.name, m.description, m.price, m.category_id, m.is_available, m.display_order, m.created_at, m.updated_at"

func scanModifier(row interface{ Scan(...interface{}) error }, m *domain.Modifier) error {
	return row.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.CategoryID, &m.IsAvailable, &m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt)
}

func collectModifiers(rows *sql.Rows) ([]domain.Modifier, error) {
	defer rows.Close()
	mods := []domain.Modifier{}
	for rows.Next() {
		var m domain.Modifier
		if err := scanModifier(rows, &m); err != nil {
			return nil, err
		}
		mods = append(mods, m)
	}
	return mods, rows.Err()
}

func (r *PostgresRepository) ListMenuItemModifiers(ctx context.Context, menuItemID int) ([]domain.Modifier, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT `+modifierColumns+`
		FROM modifiers m
		JOIN menu_item_modifiers mim ON mim.modifier_id = m.id
		WHERE mim.menu_item_id = $1
		ORDER BY m.display_order, m.id`, menuItemID)
	if err != nil {
		return nil, err
	}
	return collectModifiers(rows)
}

func (r *PostgresRepository) ListModifiers(ctx context.Context, f domain.ModifierFilter) ([]domain.Modifier, error) {
	query := "SELECT " + modifierColumns + " FROM modifiers m WHERE ($1::int IS NULL OR m.category_id = $1) AND (NOT $2 OR m.is_available)"
	query += " ORDER BY m.display_order, m.id"

	rows, err := r.db().QueryContext(ctx, query, f.CategoryID, f.AvailableOnly)
	if err != nil {
		return nil, err
	}
	return collectModifiers(rows)
}

func (r *PostgresRepository) GetModifier(ctx context.Context, id int) (*domain.Modifier, error) {
	var m domain.Modifier
	row := r.db().QueryRowContext(ctx, "SELECT "+modifierColumns+" FROM modifiers m WHERE m.id = $1", id)
	if err := scanModifier(row, &m); err != nil {
		return nil, mapError(err, "Modifier", id)
	}
	return &m, nil
}

func (r *PostgresRepository) GetModifiers(ctx context.Context, ids []int) ([]domain.Modifier, error) {
	rows, err := r.db().QueryContext(ctx,
		"SELECT "+modifierColumns+" FROM modifiers m WHERE m.id = ANY($1) ORDER BY m.id", pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return collectModifiers(rows)
}

func (r *PostgresRepository) CreateModifier(ctx context.Context, m *domain.Modifier) error {
	err := r.db().QueryRowContext(ctx, `
		INSERT INTO modifiers (name, description, price, category_id, is_available, display_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		m.Name, m.Description, m.Price, m.CategoryID, m.IsAvailable, m.DisplayOrder).
		Scan(&m.ID, &m.CreatedAt)
	return mapError(err, "Modifier", m.Name)
}

func (r *PostgresRepository) UpdateModifier(ctx context.Context, m *domain.Modifier) error {
	err := r.db().QueryRowContext(ctx, `
		UPDATE modifiers
		SET name = $1, description = $2, price = $3, category_id = $4, is_available = $5, display_order = $6, updated_at = now()
		WHERE id = $7
		RETURNING updated_at`,
		m.Name, m.Description, m.Price, m.CategoryID, m.IsAvailable, m.DisplayOrder, m.ID).
		Scan(&m.UpdatedAt)
	return mapError(err, "Modifier", m.ID)
}

func (r *PostgresRepository) DeleteModifier(ctx context.Context, id int) (int64, error) {
	n, err := affected(r.db().ExecContext(ctx, "DELETE FROM modifiers WHERE id = $1", id))
	return n, mapError(err, "Modifier", id)
}
