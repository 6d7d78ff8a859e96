package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/tawsil-app/ops-dashboard/internal/models"
)

type PostgresCustomerRepository struct {
	db *sql.DB
}

func NewPostgresCustomerRepository(db *sql.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

func (r *PostgresCustomerRepository) Create(c models.Customer) (models.Customer, error) {
	query := `INSERT INTO customers (name, phone, email, city, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, c.Name, c.Phone, c.Email, c.City, c.IsActive, c.CreatedAt).Scan(&c.ID)
	return c, err
}

func (r *PostgresCustomerRepository) GetAll() ([]models.Customer, error) {
	query := `SELECT id, name, phone, email, city, is_active, created_at FROM customers ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.City, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *PostgresCustomerRepository) GetByID(id int) (models.Customer, error) {
	query := `SELECT id, name, phone, email, city, is_active, created_at FROM customers WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var c models.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.City, &c.IsActive, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, ErrCustomerNotFound
	}
	return c, err
}

func (r *PostgresCustomerRepository) Update(c models.Customer) (models.Customer, error) {
	query := `UPDATE customers SET name = $1, phone = $2, email = $3, city = $4, is_active = $5 WHERE id = $6`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, c.Name, c.Phone, c.Email, c.City, c.IsActive, c.ID)
	if err != nil {
		return models.Customer{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (r *PostgresCustomerRepository) Delete(id int) error {
	query := `DELETE FROM customers WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
