package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medibox/medibox/pkg/pagination"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepositoryPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientColumns = `id, rfid_tag, name, age, gender, condition, status, created_at, updated_at`

func scanPatient(row pgx.Row, pt *Patient) error {
	return row.Scan(&pt.ID, &pt.RFIDTag, &pt.Name, &pt.Age, &pt.Gender, &pt.Condition, &pt.Status, &pt.CreatedAt, &pt.UpdatedAt)
}

func (r *repoPG) List(ctx context.Context, p pagination.Params) ([]Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count patients: %w", err)
	}

	query := `SELECT ` + patientColumns + ` FROM patient ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	patients := []Patient{}
	for rows.Next() {
		var pt Patient
		if err := scanPatient(rows, &pt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, pt)
	}
	return patients, total, rows.Err()
}

func (r *repoPG) GetByTag(ctx context.Context, tag string) (*Patient, error) {
	var pt Patient
	row := r.pool.QueryRow(ctx, `SELECT `+patientColumns+` FROM patient WHERE rfid_tag = $1`, tag)
	if err := scanPatient(row, &pt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &pt, nil
}

func (r *repoPG) Create(ctx context.Context, pt *Patient) error {
	if pt.ID == uuid.Nil {
		pt.ID = uuid.New()
	}

	query := `
		INSERT INTO patient (id, rfid_tag, name, age, gender, condition, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		pt.ID, pt.RFIDTag, pt.Name, pt.Age, pt.Gender, pt.Condition, pt.Status,
	).Scan(&pt.CreatedAt, &pt.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *repoPG) Update(ctx context.Context, pt *Patient) error {
	query := `
		UPDATE patient
		SET name = $2, age = $3, gender = $4, condition = $5, status = $6, updated_at = now()
		WHERE rfid_tag = $1
		RETURNING updated_at`

	err := r.pool.QueryRow(ctx, query,
		pt.RFIDTag, pt.Name, pt.Age, pt.Gender, pt.Condition, pt.Status,
	).Scan(&pt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, tag string) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM patient WHERE rfid_tag = $1`, tag)
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
