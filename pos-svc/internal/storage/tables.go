package storage

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"sushi-pos/pos-svc/internal/domain"
)

const tableColumns = `id, number, capacity, status, reservation_time, party_size,
	customer_name, customer_phone, notes, created_at, updated_at`

func scanTable(row interface{ Scan(...interface{}) error }, t *domain.Table) error {
	return row.Scan(&t.ID, &t.Number, &t.Capacity, &t.Status, &t.ReservationTime, &t.PartySize,
		&t.CustomerName, &t.CustomerPhone, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
}

func (r *PostgresRepository) CreateTable(ctx context.Context, t *domain.Table) error {
	err := r.db().QueryRowContext(ctx, `
		INSERT INTO tables (number, capacity, status, reservation_time, party_size, customer_name, customer_phone, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		t.Number, t.Capacity, t.Status, t.ReservationTime, t.PartySize, t.CustomerName, t.CustomerPhone, t.Notes).
		Scan(&t.ID, &t.CreatedAt)
	return mapError(err, "Table", t.Number)
}

func (r *PostgresRepository) ListTables(ctx context.Context) ([]domain.Table, error) {
	rows, err := r.db().QueryContext(ctx, "SELECT "+tableColumns+" FROM tables ORDER BY number")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		var t domain.Table
		if err := scanTable(rows, &t); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) GetTable(ctx context.Context, id int) (*domain.Table, error) {
	var t domain.Table
	row := r.db().QueryRowContext(ctx, "SELECT "+tableColumns+" FROM tables WHERE id = $1", id)
	if err := scanTable(row, &t); err != nil {
		return nil, mapError(err, "Table", id)
	}
	return &t, nil
}

func (r *PostgresRepository) UpdateTableStatus(ctx context.Context, id int, status domain.TableStatus) (*domain.Table, error) {
	var t domain.Table
	row := r.db().QueryRowContext(ctx, `
		UPDATE tables SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING `+tableColumns, status, id)
	if err := scanTable(row, &t); err != nil {
		return nil, mapError(err, "Table", id)
	}
	return &t, nil
}

// CountActiveOrders counts orders of the table that are still being served.
func (r *PostgresRepository) CountActiveOrders(ctx context.Context, tableID int) (int, error) {
	var n int
	err := r.db().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM orders WHERE table_id = $1 AND status = ANY($2)",
		tableID, pq.Array(statusStrings(domain.ActiveOrderStatuses))).Scan(&n)
	return n, err
}

// DeleteTable removes the table together with its finished orders. The
// caller checks for active orders first; the status filter keeps a racing
// new order from being swept away with it.
func (r *PostgresRepository) DeleteTable(ctx context.Context, id int) (int64, error) {
	var n int64
	err := r.inTx(ctx, func(q querier) error {
		finished := []domain.OrderStatus{domain.OrderStatusCompleted, domain.OrderStatusCancelled}
		ids, err := orderIDsOfTable(ctx, q, id, finished)
		if err != nil {
			return err
		}
		if _, err := deleteOrderRows(ctx, q, ids); err != nil {
			return err
		}
		n, err = affected(q.ExecContext(ctx, "DELETE FROM tables WHERE id = $1", id))
		return err
	})
	return n, mapError(err, "Table", id)
}

// ClearTable deletes every order of the table and marks it available.
func (r *PostgresRepository) ClearTable(ctx context.Context, id int) error {
	err := r.inTx(ctx, func(q querier) error {
		ids, err := orderIDsOfTable(ctx, q, id, nil)
		if err != nil {
			return err
		}
		if _, err := deleteOrderRows(ctx, q, ids); err != nil {
			return err
		}
		var tableID int
		return q.QueryRowContext(ctx,
			"UPDATE tables SET status = $1, updated_at = now() WHERE id = $2 RETURNING id",
			domain.TableStatusAvailable, id).Scan(&tableID)
	})
	return mapError(err, "Table", id)
}

func orderIDsOfTable(ctx context.Context, q querier, tableID int, statuses []domain.OrderStatus) ([]int64, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if statuses == nil {
		rows, err = q.QueryContext(ctx, "SELECT id FROM orders WHERE table_id = $1", tableID)
	} else {
		rows, err = q.QueryContext(ctx, "SELECT id FROM orders WHERE table_id = $1 AND status = ANY($2)",
			tableID, pq.Array(statusStrings(statuses)))
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// deleteOrderRows removes orders and everything hanging off them and
// reports how many orders were deleted.
func deleteOrderRows(ctx context.Context, q querier, orderIDs []int64) (int64, error) {
	if len(orderIDs) == 0 {
		return 0, nil
	}
	ids := pq.Array(orderIDs)
	stmts := []string{
		"DELETE FROM order_item_modifiers WHERE order_item_id IN (SELECT id FROM order_items WHERE order_id = ANY($1))",
		"DELETE FROM order_items WHERE order_id = ANY($1)",
		"DELETE FROM discounts WHERE order_id = ANY($1)",
	}
	for _, stmt := range stmts {
		if _, err := q.ExecContext(ctx, stmt, ids); err != nil {
			return 0, err
		}
	}
	return affected(q.ExecContext(ctx, "DELETE FROM orders WHERE id = ANY($1)", ids))
}

func statusStrings(statuses []domain.OrderStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
