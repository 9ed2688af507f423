package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"sushi-pos/pos-svc/internal/apperr"
	"sushi-pos/pos-svc/internal/domain"
)

const orderColumns = `id, table_id, status, notes, ayce_order, ayce_price, total_amount, version,
	created_at, updated_at, completion_time`

func scanOrder(row interface{ Scan(...interface{}) error }, o *domain.Order) error {
	return row.Scan(&o.ID, &o.TableID, &o.Status, &o.Notes, &o.AYCEOrder, &o.AYCEPrice, &o.TotalAmount, &o.Version,
		&o.CreatedAt, &o.UpdatedAt, &o.CompletionTime)
}

// CreateOrder inserts the order with its items and their modifiers. Either
// everything is written or nothing is.
func (r *PostgresRepository) CreateOrder(ctx context.Context, o *domain.Order) error {
	err := r.inTx(ctx, func(q querier) error {
		err := q.QueryRowContext(ctx, `
			INSERT INTO orders (table_id, status, notes, ayce_order, ayce_price, total_amount, completion_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, version, created_at`,
			o.TableID, o.Status, o.Notes, o.AYCEOrder, o.AYCEPrice, o.TotalAmount, o.CompletionTime).
			Scan(&o.ID, &o.Version, &o.CreatedAt)
		if err != nil {
			return err
		}
		return insertItems(ctx, q, o.ID, o.Items)
	})
	return mapError(err, "Order", o.ID)
}

func insertItems(ctx context.Context, q querier, orderID int, items []domain.OrderItem) error {
	for i := range items {
		item := &items[i]
		item.OrderID = orderID
		err := q.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price, notes)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at`,
			orderID, item.MenuItemID, item.Quantity, item.UnitPrice, item.Notes).
			Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			return err
		}
		for _, m := range item.Modifiers {
			if _, err := q.ExecContext(ctx,
				"INSERT INTO order_item_modifiers (order_item_id, modifier_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
				item.ID, m.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// updateOrderRow writes the mutable columns of o. The row must still carry
// the version o was read with; the version is bumped on success. A row that
// has since been deleted is NotFound, a newer version is Conflict.
func updateOrderRow(ctx context.Context, q querier, o *domain.Order) error {
	err := q.QueryRowContext(ctx, `
		UPDATE orders
		SET table_id = $1, status = $2, notes = $3, ayce_order = $4, ayce_price = $5,
			total_amount = $6, completion_time = $7, version = version + 1, updated_at = now()
		WHERE id = $8 AND version = $9
		RETURNING version, updated_at`,
		o.TableID, o.Status, o.Notes, o.AYCEOrder, o.AYCEPrice, o.TotalAmount, o.CompletionTime, o.ID, o.Version).
		Scan(&o.Version, &o.UpdatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}
		var exists bool
		if err := q.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)", o.ID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("Order", o.ID)
		}
		return apperr.Conflict("Order %d was modified by another request", o.ID)
	}
	return nil
}

func (r *PostgresRepository) UpdateOrder(ctx context.Context, o *domain.Order) error {
	return mapError(updateOrderRow(ctx, r.db(), o), "Order", o.ID)
}

func (r *PostgresRepository) DeleteOrder(ctx context.Context, id int) (int64, error) {
	var n int64
	err := r.inTx(ctx, func(q querier) error {
		var err error
		n, err = deleteOrderRows(ctx, q, []int64{int64(id)})
		return err
	})
	return n, mapError(err, "Order", id)
}

// AddOrderItems appends items to the order and saves the order row in the
// same transaction.
func (r *PostgresRepository) AddOrderItems(ctx context.Context, o *domain.Order, items []domain.OrderItem) error {
	err := r.inTx(ctx, func(q querier) error {
		if err := insertItems(ctx, q, o.ID, items); err != nil {
			return err
		}
		return updateOrderRow(ctx, q, o)
	})
	return mapError(err, "Order", o.ID)
}

func (r *PostgresRepository) DeleteOrderItem(ctx context.Context, o *domain.Order, itemID int) error {
	err := r.inTx(ctx, func(q querier) error {
		if _, err := q.ExecContext(ctx, "DELETE FROM order_item_modifiers WHERE order_item_id = $1", itemID); err != nil {
			return err
		}
		n, err := affected(q.ExecContext(ctx, "DELETE FROM order_items WHERE id = $1 AND order_id = $2", itemID, o.ID))
		if err != nil {
			return err
		}
		if n == 0 {
			return apperr.NotFound("OrderItem", itemID)
		}
		return updateOrderRow(ctx, q, o)
	})
	return mapError(err, "Order", o.ID)
}

// CreateDiscount attaches d to the order. The unique order_id column turns a
// second discount into a Conflict.
func (r *PostgresRepository) CreateDiscount(ctx context.Context, o *domain.Order, d *domain.Discount) error {
	err := r.inTx(ctx, func(q querier) error {
		err := q.QueryRowContext(ctx, `
			INSERT INTO discounts (order_id, type, value)
			VALUES ($1, $2, $3)
			RETURNING id, created_at`,
			d.OrderID, d.Type, d.Value).
			Scan(&d.ID, &d.CreatedAt)
		if err != nil {
			return mapError(err, "Discount", d.OrderID)
		}
		return updateOrderRow(ctx, q, o)
	})
	return mapError(err, "Order", o.ID)
}

func (r *PostgresRepository) DeleteDiscount(ctx context.Context, o *domain.Order) error {
	err := r.inTx(ctx, func(q querier) error {
		n, err := affected(q.ExecContext(ctx, "DELETE FROM discounts WHERE order_id = $1", o.ID))
		if err != nil {
			return err
		}
		if n == 0 {
			return apperr.NotFound("Discount for order", o.ID)
		}
		return updateOrderRow(ctx, q, o)
	})
	return mapError(err, "Order", o.ID)
}

// GetOrder returns the order aggregate: items, their modifiers and the
// discount. Modifier prices come from the live catalog rows.
func (r *PostgresRepository) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	var o domain.Order
	row := r.db().QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	if err := scanOrder(row, &o); err != nil {
		return nil, mapError(err, "Order", id)
	}
	orders := []domain.Order{o}
	if err := r.loadAggregates(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// ListOrders returns matching order aggregates, newest first.
func (r *PostgresRepository) ListOrders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	var (
		where []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Status != nil {
		where = append(where, "status = "+arg(string(*f.Status)))
	}
	if f.TableID != nil {
		where = append(where, "table_id = "+arg(*f.TableID))
	}
	if f.CompletedSince != nil {
		where = append(where, "completion_time >= "+arg(*f.CompletedSince))
	}
	if f.CompletedBefore != nil {
		where = append(where, "completion_time < "+arg(*f.CompletedBefore))
	}

	query := "SELECT " + orderColumns + " FROM orders"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC OFFSET " + arg(f.Skip)
	if f.Limit > 0 {
		query += " LIMIT " + arg(f.Limit)
	}

	rows, err := r.db().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			rows.Close()
			return nil, err
		}
		orders = append(orders, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadAggregates(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *PostgresRepository) loadAggregates(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, len(orders))
	index := make(map[int]int, len(orders))
	for i := range orders {
		ids[i] = int64(orders[i].ID)
		index[orders[i].ID] = i
		orders[i].Items = []domain.OrderItem{}
	}

	rows, err := r.db().QueryContext(ctx, `
		SELECT id, order_id, menu_item_id, quantity, unit_price, notes, created_at
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id`, pq.Array(ids))
	if err != nil {
		return err
	}
	var itemIDs []int64
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.Quantity, &it.UnitPrice, &it.Notes, &it.CreatedAt); err != nil {
			rows.Close()
			return err
		}
		it.Modifiers = []domain.Modifier{}
		o := &orders[index[it.OrderID]]
		o.Items = append(o.Items, it)
		itemIDs = append(itemIDs, int64(it.ID))
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if len(itemIDs) > 0 {
		if err := r.loadItemModifiers(ctx, orders, itemIDs); err != nil {
			return err
		}
	}
	return r.loadDiscounts(ctx, orders, index, ids)
}

func (r *PostgresRepository) loadItemModifiers(ctx context.Context, orders []domain.Order, itemIDs []int64) error {
	rows, err := r.db().QueryContext(ctx, `
		SELECT oim.order_item_id, `+modifierColumns+`
		FROM order_item_modifiers oim
		JOIN modifiers m ON m.id = oim.modifier_id
		WHERE oim.order_item_id = ANY($1)
		ORDER BY oim.order_item_id, m.id`, pq.Array(itemIDs))
	if err != nil {
		return err
	}
	defer rows.Close()

	byItem := make(map[int][]domain.Modifier)
	for rows.Next() {
		var (
			itemID int
			m      domain.Modifier
		)
		if err := rows.Scan(&itemID, &m.ID, &m.Name, &m.Description, &m.Price, &m.CategoryID,
			&m.IsAvailable, &m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return err
		}
		byItem[itemID] = append(byItem[itemID], m)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range orders {
		for j := range orders[i].Items {
			if mods, ok := byItem[orders[i].Items[j].ID]; ok {
				orders[i].Items[j].Modifiers = mods
			}
		}
	}
	return nil
}

func (r *PostgresRepository) loadDiscounts(ctx context.Context, orders []domain.Order, index map[int]int, ids []int64) error {
	rows, err := r.db().QueryContext(ctx,
		"SELECT id, order_id, type, value, created_at FROM discounts WHERE order_id = ANY($1)", pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var d domain.Discount
		if err := rows.Scan(&d.ID, &d.OrderID, &d.Type, &d.Value, &d.CreatedAt); err != nil {
			return err
		}
		orders[index[d.OrderID]].Discount = &d
	}
	return rows.Err()
}
