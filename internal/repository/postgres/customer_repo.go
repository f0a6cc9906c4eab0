package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRow struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Address   string
	Active    bool
}

type CustomerRepo struct {
	db *pgxpool.Pool
}

func NewCustomerRepo(db *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{db: db}
}

type queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const customerColumns = `id, first_name, last_name, email, address, active`

func (r *CustomerRepo) Create(ctx context.Context, in CustomerRow) (int64, error) {
	const q = `
INSERT INTO customers (first_name, last_name, email, address, active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id;
`
	var id int64
	if err := r.db.QueryRow(ctx, q, in.FirstName, in.LastName, in.Email, in.Address, in.Active).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*CustomerRow, error) {
	q := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 LIMIT 1;`
	return scanOne(r.db.QueryRow(ctx, q, id))
}

// Update overwrites every data column inside a transaction that first locks the row.
func (r *CustomerRepo) Update(ctx context.Context, in CustomerRow) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := lockCustomer(ctx, tx, in.ID); err != nil {
		return err
	}

	const q = `
UPDATE customers
SET
  first_name = $2,
  last_name  = $3,
  email      = $4,
  address    = $5,
  active     = $6
WHERE id = $1;
`
	if _, err := tx.Exec(ctx, q, in.ID, in.FirstName, in.LastName, in.Email, in.Address, in.Active); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1;`, id)
	return err
}

func (r *CustomerRepo) ListWhere(ctx context.Context, column string, value any) ([]CustomerRow, error) {
	q := fmt.Sprintf(`SELECT %s FROM customers WHERE %s = $1;`, customerColumns, column)
	return r.list(ctx, q, value)
}

func (r *CustomerRepo) List(ctx context.Context) ([]CustomerRow, error) {
	return r.list(ctx, `SELECT `+customerColumns+` FROM customers;`)
}

func (r *CustomerRepo) list(ctx context.Context, q string, args ...any) ([]CustomerRow, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CustomerRow, 0)
	for rows.Next() {
		var c CustomerRow
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Address, &c.Active); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanOne(row pgx.Row) (*CustomerRow, error) {
	var out CustomerRow
	if err := row.Scan(&out.ID, &out.FirstName, &out.LastName, &out.Email, &out.Address, &out.Active); err != nil {
		return nil, err
	}
	return &out, nil
}

func lockCustomer(ctx context.Context, q queryer, id int64) error {
	const sql = `SELECT 1 FROM customers WHERE id = $1 FOR UPDATE`
	var one int
	return q.QueryRow(ctx, sql, id).Scan(&one)
}

// isValueTooLong reports a varchar overflow (string_data_right_truncation).
func isValueTooLong(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "22001"
	}
	return false
}
