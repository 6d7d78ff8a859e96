package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/tawsil-app/ops-dashboard/internal/models"
)

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) Create(o models.Order) (models.Order, error) {
	query := `INSERT INTO orders (status, amount, customer_id, merchant_id, captain_id, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, o.Status, o.Amount, o.CustomerID, o.MerchantID, o.CaptainID, o.CreatedAt, o.CompletedAt).Scan(&o.ID)
	return o, err
}

func (r *PostgresOrderRepository) GetAll() ([]models.Order, error) {
	query := `SELECT id, status, amount, customer_id, merchant_id, captain_id, created_at, completed_at FROM orders ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.Status, &o.Amount, &o.CustomerID, &o.MerchantID, &o.CaptainID, &o.CreatedAt, &o.CompletedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) GetByID(id int) (models.Order, error) {
	query := `SELECT id, status, amount, customer_id, merchant_id, captain_id, created_at, completed_at FROM orders WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var o models.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &o.Status, &o.Amount, &o.CustomerID, &o.MerchantID, &o.CaptainID, &o.CreatedAt, &o.CompletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	return o, err
}

func (r *PostgresOrderRepository) Update(o models.Order) (models.Order, error) {
	query := `UPDATE orders SET status = $1, amount = $2, captain_id = $3, completed_at = $4 WHERE id = $5`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, o.Status, o.Amount, o.CaptainID, o.CompletedAt, o.ID)
	if err != nil {
		return models.Order{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (r *PostgresOrderRepository) Delete(id int) error {
	query := `DELETE FROM orders WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
