package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/tawsil-app/ops-dashboard/internal/models"
)

type PostgresCaptainRepository struct {
	db *sql.DB
}

func NewPostgresCaptainRepository(db *sql.DB) *PostgresCaptainRepository {
	return &PostgresCaptainRepository{db: db}
}

func (r *PostgresCaptainRepository) Create(c models.Captain) (models.Captain, error) {
	query := `INSERT INTO captains (name, phone, is_active, is_available, vehicle_type, average_rating, total_deliveries, success_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, c.Name, c.Phone, c.IsActive, c.IsAvailable, c.VehicleType, c.AverageRating, c.TotalDeliveries, c.SuccessRate).Scan(&c.ID)
	return c, err
}

func (r *PostgresCaptainRepository) GetAll() ([]models.Captain, error) {
	query := `SELECT id, name, phone, is_active, is_available, vehicle_type, average_rating, total_deliveries, success_rate FROM captains ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var captains []models.Captain
	for rows.Next() {
		var c models.Captain
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.IsActive, &c.IsAvailable, &c.VehicleType, &c.AverageRating, &c.TotalDeliveries, &c.SuccessRate); err != nil {
			return nil, err
		}
		captains = append(captains, c)
	}
	return captains, rows.Err()
}

func (r *PostgresCaptainRepository) GetByID(id int) (models.Captain, error) {
	query := `SELECT id, name, phone, is_active, is_available, vehicle_type, average_rating, total_deliveries, success_rate FROM captains WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var c models.Captain
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.IsActive, &c.IsAvailable, &c.VehicleType, &c.AverageRating, &c.TotalDeliveries, &c.SuccessRate)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Captain{}, ErrCaptainNotFound
	}
	return c, err
}

func (r *PostgresCaptainRepository) Update(c models.Captain) (models.Captain, error) {
	query := `UPDATE captains SET name = $1, phone = $2, is_active = $3, is_available = $4, vehicle_type = $5, average_rating = $6, total_deliveries = $7, success_rate = $8 WHERE id = $9`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, c.Name, c.Phone, c.IsActive, c.IsAvailable, c.VehicleType, c.AverageRating, c.TotalDeliveries, c.SuccessRate, c.ID)
	if err != nil {
		return models.Captain{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Captain{}, ErrCaptainNotFound
	}
	return c, nil
}

func (r *PostgresCaptainRepository) Delete(id int) error {
	query := `DELETE FROM captains WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrCaptainNotFound
	}
	return nil
}
