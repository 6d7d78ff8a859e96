package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/tawsil-app/ops-dashboard/internal/models"
)

type PostgresMerchantRepository struct {
	db *sql.DB
}

func NewPostgresMerchantRepository(db *sql.DB) *PostgresMerchantRepository {
	return &PostgresMerchantRepository{db: db}
}

func (r *PostgresMerchantRepository) Create(m models.Merchant) (models.Merchant, error) {
	query := `INSERT INTO merchants (name, phone, is_active, commission_rate, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, m.Name, m.Phone, m.IsActive, m.CommissionRate, m.Category, m.CreatedAt).Scan(&m.ID)
	return m, err
}

func (r *PostgresMerchantRepository) GetAll() ([]models.Merchant, error) {
	return r.list(`SELECT id, name, phone, is_active, commission_rate, category, created_at FROM merchants ORDER BY id`)
}

func (r *PostgresMerchantRepository) GetActive() ([]models.Merchant, error) {
	return r.list(`SELECT id, name, phone, is_active, commission_rate, category, created_at FROM merchants WHERE is_active ORDER BY id`)
}

func (r *PostgresMerchantRepository) list(query string) ([]models.Merchant, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var merchants []models.Merchant
	for rows.Next() {
		var m models.Merchant
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.IsActive, &m.CommissionRate, &m.Category, &m.CreatedAt); err != nil {
			return nil, err
		}
		merchants = append(merchants, m)
	}
	return merchants, rows.Err()
}

func (r *PostgresMerchantRepository) GetByID(id int) (models.Merchant, error) {
	query := `SELECT id, name, phone, is_active, commission_rate, category, created_at FROM merchants WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m models.Merchant
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Phone, &m.IsActive, &m.CommissionRate, &m.Category, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Merchant{}, ErrMerchantNotFound
	}
	return m, err
}

func (r *PostgresMerchantRepository) Update(m models.Merchant) (models.Merchant, error) {
	query := `UPDATE merchants SET name = $1, phone = $2, is_active = $3, commission_rate = $4, category = $5 WHERE id = $6`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, m.Name, m.Phone, m.IsActive, m.CommissionRate, m.Category, m.ID)
	if err != nil {
		return models.Merchant{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Merchant{}, ErrMerchantNotFound
	}
	return m, nil
}

func (r *PostgresMerchantRepository) Delete(id int) error {
	query := `DELETE FROM merchants WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrMerchantNotFound
	}
	return nil
}
